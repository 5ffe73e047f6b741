// baseline_conformance runs JSON conformance test files against the baseline evaluator.
//
// Usage:
//
//	baseline_conformance [-atol=1e-6] [-rtol=1e-5] [-v=1] files...
//
// It prints one line per test case and exits with status 1 if any case fails.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/webmachinelearning/webnn-baseline-sub000/conformance"
	"k8s.io/klog/v2"
)

var (
	flagATol   = flag.Float64("atol", conformance.DefaultATol, "Absolute tolerance, used by test cases that don't set their own.")
	flagRTol   = flag.Float64("rtol", conformance.DefaultRTol, "Relative tolerance, used by test cases that don't set their own.")
	flagFailed = flag.Bool("failed_only", false, "Only print the test cases that failed.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] files...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	runner := &conformance.Runner{Tolerance: conformance.Tolerance{ATol: *flagATol, RTol: *flagRTol}}
	var numTests, numFailed int
	for _, path := range flag.Args() {
		file, err := conformance.LoadFile(path)
		if err != nil {
			klog.Fatalf("Failed to load tests: %+v", err)
		}
		klog.V(1).Infof("%s: %d tests", path, len(file.Tests))
		for _, result := range runner.RunFile(file) {
			numTests++
			if !result.Passed() {
				numFailed++
			} else if *flagFailed {
				continue
			}
			fmt.Printf("%s: %s\n", path, result)
		}
	}
	fmt.Printf("%d tests, %d passed, %d failed\n", numTests, numTests-numFailed, numFailed)
	if numFailed > 0 {
		klog.Errorf("%d conformance tests failed", numFailed)
		klog.Flush()
		os.Exit(1)
	}
}
