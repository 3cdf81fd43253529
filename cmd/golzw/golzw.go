package main

import (
	"flag"
	"os"

	"github.com/xiaonanln/go-lzw/engine/config"
	"github.com/xiaonanln/go-lzw/engine/lzlog"
)

var args struct {
	configFile string
	outputFile string
	format     string
}

func parseArgs() {
	flag.StringVar(&args.configFile, "configfile", "", "set config file path")
	flag.StringVar(&args.outputFile, "o", "", "set output file path")
	flag.StringVar(&args.format, "format", "", "override compress format (lzw, snappy, flate, zlib)")
	flag.Parse()
}

func main() {
	parseArgs()
	args := flag.Args()

	if len(args) == 0 {
		showMsg("no command to execute")
		flag.Usage()
		os.Exit(1)
	}

	setupConfig()
	setupLog()

	cmd := args[0]
	if cmd == "compress" {
		if len(args) != 2 {
			showMsgAndQuit("should specify one input file")
		}

		compressFile(args[1])
	} else if cmd == "decompress" {
		if len(args) != 2 {
			showMsgAndQuit("should specify one input file")
		}

		decompressFile(args[1])
	} else {
		showMsgAndQuit("unknown command: %s", cmd)
	}
}

func setupConfig() {
	if args.configFile != "" {
		config.SetConfigFile(args.configFile)
	} else if _, err := os.Stat(config.GetConfigFilePath()); os.IsNotExist(err) {
		// no golzw.ini found, run on defaults
		config.UseDefaults()
	}
}

func setupLog() {
	logConfig := config.GetLog()
	lzlog.SetSource("golzw")
	lzlog.SetLevel(lzlog.StringToLevel(logConfig.LogLevel))
}

func compressFormat() string {
	if args.format != "" {
		return args.format
	}
	return config.GetCompress().Format
}
