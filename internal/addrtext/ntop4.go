/*
Copyright 2025 Netaddr Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package addrtext

import "strconv"

// FormatV4 renders octets in dotted-decimal notation, with no leading
// zeros on any octet (so the result is never mistaken for an octal
// literal on the next round trip through ParseV4).
func FormatV4(octets [4]byte) string {
	// 4 octets, up to 3 digits each, plus 3 dots: 15 bytes, worst case.
	buf := make([]byte, 0, 15)
	for i, o := range octets {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(o), 10)
	}
	return string(buf)
}

// FormatV4Prefix renders octets followed by "/prefix".
func FormatV4Prefix(octets [4]byte, prefix uint8) string {
	return FormatV4(octets) + "/" + strconv.FormatUint(uint64(prefix), 10)
}
