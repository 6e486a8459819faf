package ecdh

import "github.com/smallyu/go-ecmath/internal/logger"

var log = logger.Get(logger.SubsystemTags.ECDH)
