package adaptor

import (
	"net/http"

	"airline-booking/pkg/apperror"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

// respondError maps a service error to an HTTP response. Classified errors
// carry their own message; anything else is logged and reported as a
// generic internal failure.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := apperror.As(err)
	if appErr == nil {
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseInternalError(w, "Something went wrong, please try again later")
		return
	}

	log.Warn(operation+" rejected",
		zap.Error(err),
		zap.String("operation", operation),
	)

	status := apperror.HTTPStatus(appErr.Kind)
	var errs any
	if len(appErr.Fields) > 0 {
		errs = appErr.Fields
	}
	utils.ResponseJSON(w, status, false, appErr.Message, nil, errs)
}
