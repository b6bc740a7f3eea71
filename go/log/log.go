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

// Package log is a thin adapter around glog so the rest of the tree does not
// name the logging implementation directly.
package log

import (
	goflag "flag"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// Level is the glog verbosity level.
type Level = glog.Level

var (
	// Flush ensures any pending I/O is written.
	Flush = glog.Flush

	// V reports whether verbosity at the call site is at least the requested
	// level.
	V = glog.V

	// Info formats arguments in the manner of fmt.Print.
	Info = glog.Info
	// Infof formats arguments in the manner of fmt.Printf.
	Infof = glog.Infof

	// Warning formats arguments in the manner of fmt.Print.
	Warning = glog.Warning
	// Warningf formats arguments in the manner of fmt.Printf.
	Warningf = glog.Warningf

	// Error formats arguments in the manner of fmt.Print.
	Error = glog.Error
	// Errorf formats arguments in the manner of fmt.Printf.
	Errorf = glog.Errorf

	// Exitf formats, flushes and exits with status 1.
	Exitf = glog.Exitf
)

// RegisterFlags installs the logging flags (glog registers them on the
// standard flag set) on the given pflag set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.AddGoFlagSet(goflag.CommandLine)
}
