package main

import (
	"os"

	"github.com/kyverno/tupleargs/pkg/cmd"
	"k8s.io/component-base/logs"
)

func main() {
	logs.InitLogs()
	defer logs.FlushLogs()

	if err := cmd.NewCommand().Execute(); err != nil {
		logs.FlushLogs()
		os.Exit(1)
	}
}
