package main

import (
	"os"
	"strings"

	"github.com/xiaonanln/go-lzw/engine/compress"
	"github.com/xiaonanln/go-lzw/engine/consts"
	"github.com/xiaonanln/go-lzw/engine/lzlog"
)

func compressFile(inputFile string) {
	data := readFileOrQuit(inputFile)
	cr := compress.NewCompressor(compressFormat())
	c, err := cr.Compress(data)
	checkErrorOrQuit(err, "compress failed")

	outputFile := args.outputFile
	if outputFile == "" {
		outputFile = inputFile + consts.COMPRESSED_FILE_SUFFIX
	}
	err = os.WriteFile(outputFile, c, consts.OUTPUT_FILE_MODE)
	checkErrorOrQuit(err, "write output failed")
	lzlog.Infof("compressed %s: %d bytes -> %s: %d bytes (%d%%)",
		inputFile, len(data), outputFile, len(c), percent(len(c), len(data)))
}

func decompressFile(inputFile string) {
	c := readFileOrQuit(inputFile)
	cr := compress.NewCompressor(compressFormat())
	data, err := cr.Decompress(c)
	checkErrorOrQuit(err, "decompress failed")

	outputFile := args.outputFile
	if outputFile == "" {
		if strings.HasSuffix(inputFile, consts.COMPRESSED_FILE_SUFFIX) {
			outputFile = inputFile[:len(inputFile)-len(consts.COMPRESSED_FILE_SUFFIX)]
		} else {
			outputFile = inputFile + ".out"
		}
	}
	err = os.WriteFile(outputFile, data, consts.OUTPUT_FILE_MODE)
	checkErrorOrQuit(err, "write output failed")
	lzlog.Infof("decompressed %s: %d bytes -> %s: %d bytes",
		inputFile, len(c), outputFile, len(data))
}

// readFileOrQuit reads the whole input file, reporting a missing file
// differently from a failed read.
func readFileOrQuit(inputFile string) []byte {
	data, err := os.ReadFile(inputFile)
	if os.IsNotExist(err) {
		showMsgAndQuit("input file %s does not exist", inputFile)
	}
	checkErrorOrQuit(err, "read input failed")
	if consts.DEBUG_STREAMS {
		lzlog.Debugf("read %s: %d bytes", inputFile, len(data))
	}
	return data
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}
