package random

import "github.com/smallyu/go-ecmath/internal/logger"

var log = logger.Get(logger.SubsystemTags.RAND)
