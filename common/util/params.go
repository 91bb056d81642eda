package util

import (
	"flag"
)

type Params struct {
	MaxWidth   int
	MaxHeight  int
	Thumbnail  bool
	LogLevel   string
	InputPath  string
	OutputPath string
}

func GetAppParams() *Params {
	maxWidth := flag.Int("maxWidth", 1920, "Maximum width for the fitted image")
	maxHeight := flag.Int("maxHeight", 1080, "Maximum height for the fitted image")
	thumbnail := flag.Bool("thumbnail", false, "Produce a thumbnail instead of fitting to the given bounds")
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")

	flag.Parse()
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	return &Params{
		MaxWidth:   *maxWidth,
		MaxHeight:  *maxHeight,
		Thumbnail:  *thumbnail,
		LogLevel:   *logLevel,
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
}
