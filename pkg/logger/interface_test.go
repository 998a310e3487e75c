package logger

import (
	"go.uber.org/zap"
)

var _ Logger = (*zap.SugaredLogger)(nil)
