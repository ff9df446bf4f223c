package usecases

import (
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func internalOrAppError(log logger.Interface, msg string, err error, keysAndValues ...interface{}) error {
	if errors.GetAppError(err) != nil {
		return err
	}
	log.Errorw(msg, append(keysAndValues, "error", err)...)
	return errors.NewInternalError(msg)
}
