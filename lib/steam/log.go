package steam

import (
	"github.com/cs2cfg/crosshairctl/lib/util/logger"
)

var log = logger.GetLogger()
