package helpers

import "go.uber.org/zap"

// NewLogger returns a development logger when verbose is set and a no-op
// logger otherwise
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
