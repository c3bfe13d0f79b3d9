// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/egasimus/hfedisk/internal/env"
	"github.com/egasimus/hfedisk/pkg/sysinfo"
	"github.com/spf13/cobra"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Print build and host information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         RunVersion,
	}
}

func RunVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	PrintLogo(out)

	sinfo, err := sysinfo.Stat()
	if err != nil {
		sinfo = &sysinfo.SysUnknown
	}

	fmt.Fprintf(out, "Version:    %s\n", env.Version)
	fmt.Fprintf(out, "Commit:     %s\n", env.CommitHash)
	fmt.Fprintf(out, "Build Time: %s\n", env.BuildTime)
	fmt.Fprintf(out, "Go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "Host:       %s\n", sinfo)
	return nil
}

func PrintLogo(w io.Writer) {
	fmt.Fprintln(w, " _      __       _ _     _    ")
	fmt.Fprintln(w, "| |__  / _| ___ | (_)___| | __")
	fmt.Fprintln(w, "| '_ \\| |_ / _ \\/ _` / __| |/ /")
	fmt.Fprintln(w, "| | | |  _|  __/ (_| \\__ \\   < ")
	fmt.Fprintln(w, "|_| |_|_|  \\___|\\__,_|___/_|\\_\\")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "HFE floppy disk image inspector")
	fmt.Fprintln(w)
}
