package ml

import (
	"civicdesk/internal/shared/config"
	"civicdesk/internal/shared/logger"
)

var (
	configMLKeyword        = config.MLConfig{Mode: ModeKeyword}
	configMLInferenceNoURL = config.MLConfig{Mode: ModeInference}
	configMLUnknown        = config.MLConfig{Mode: "quantum"}
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}
