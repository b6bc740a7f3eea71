/*
Copyright 2024 The Lazyreal Authors.

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

// realcalc evaluates arithmetic expressions over exact real numbers,
// printing enclosing intervals instead of rounded approximations.
package main

import (
	"os"

	"github.com/lazyreal/lazyreal/go/cmd/realcalc/cli"
	"github.com/lazyreal/lazyreal/go/log"
)

func main() {
	defer log.Flush()
	if err := cli.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
