// Copyright 2026 go-bitrow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bitrow packs, unpacks and visualizes bit-level header rows
// described by a YAML layout file.
//
// Usage:
//
//	bitrow pack -l ipv4.yaml version=4 ihl=5 tos=0 length=1500
//	bitrow unpack -l ipv4.yaml 0x05dc0045
//	bitrow show -l ipv4.yaml 0x05dc0045
//
// Words and field values accept decimal, 0x hex and 0b binary forms.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
