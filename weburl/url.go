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

package weburl

// ParseStrict parses raw with the default, strict WHATWG options (no
// tolerance, no whitespace stripping). It is shorthand for
// Parse(raw, Options{}).
func ParseStrict(raw string) Components {
	return Parse(raw, Options{})
}
