// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/nftpoold/fault"
)

var statusOfKind = map[string]int{
	fault.KindAssetOccupied:        http.StatusConflict,
	fault.KindCustody:              http.StatusUnprocessableEntity,
	fault.KindDuplicateListing:     http.StatusConflict,
	fault.KindInsufficientBalance:  http.StatusPaymentRequired,
	fault.KindInsufficientPayment:  http.StatusPaymentRequired,
	fault.KindInternal:             http.StatusInternalServerError,
	fault.KindInvalidArgument:      http.StatusBadRequest,
	fault.KindInvalidDuration:      http.StatusBadRequest,
	fault.KindInvalidTerms:         http.StatusBadRequest,
	fault.KindNotFound:             http.StatusNotFound,
	fault.KindNotOwner:             http.StatusForbidden,
	fault.KindOverflow:             http.StatusBadRequest,
	fault.KindRateLimited:          http.StatusTooManyRequests,
	fault.KindUnauthorised:         http.StatusUnauthorized,
	fault.KindWithdrawalInProgress: http.StatusConflict,
}

// Status - HTTP status for an error
func Status(err error) int {
	if s, ok := statusOfKind[fault.Kind(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func errorBody(kind string, reason string) gin.H {
	return gin.H{
		"error": gin.H{
			"kind":   kind,
			"reason": reason,
		},
	}
}

// abort the request with the error taxonomy body
func (a *API) fail(c *gin.Context, err error) {
	status := Status(err)
	if http.StatusInternalServerError == status {
		a.log.Errorf("%s %s  error: %s", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, errorBody(fault.Kind(err), fault.Reason(err)))
}
