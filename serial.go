// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing state identifier. Every shared
// state — whether created by Pair, Ready, Faulted, or a chaining call —
// is assigned the next serial value. Consumed handles report serial 0.
type Serial = uint32

// counter is the global monotonic counter for state serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
