package handlers

import (
	"context"
	"errors"
	"net/http"

	"rental_escrow/internal/adapter/http/dto/request"
	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/infrastructure/payments"
	"rental_escrow/internal/usecase"
	"rental_escrow/internal/usecase/interfaces"
	"rental_escrow/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(err error) *pkg.AppError {
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

func mapEscrowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEscrowNotFound):
		return pkg.NewDomainErrorSimple("ESCROW_NOT_FOUND", "Escrow not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBucketNotFound):
		return pkg.NewDomainError("BUCKET_NOT_FOUND", "Bucket not found", err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrPartyNotFound):
		return pkg.NewDomainError("PARTY_NOT_FOUND", "Party not found", err, http.StatusNotFound)

	case errors.Is(err, entities.ErrInvalidEscrowID),
		errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidDateRange),
		errors.Is(err, entities.ErrInvalidPolicy),
		errors.Is(err, entities.ErrInvalidBucketKind),
		errors.Is(err, entities.ErrDuplicateBucket),
		errors.Is(err, entities.ErrInvalidParty),
		errors.Is(err, entities.ErrInvalidDecision),
		errors.Is(err, entities.ErrInvalidLeaseEvent),
		errors.Is(err, usecase.ErrInvalidBucketID),
		errors.Is(err, usecase.ErrInvalidProviderPaymentID),
		errors.Is(err, payments.ErrInvalidProviderPaymentID),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)

	case errors.Is(err, entities.ErrPendingRelease),
		errors.Is(err, entities.ErrDuplicateVote):
		return pkg.NewDomainError("CONFLICT", "Request conflicts with pending work", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainError("CONCURRENT_UPDATE", "Escrow was modified concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrEscrowAlreadyExists):
		return pkg.NewDomainErrorSimple("ESCROW_ALREADY_EXISTS", "Escrow already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrAlreadyInvited),
		errors.Is(err, entities.ErrNotInvited),
		errors.Is(err, entities.ErrNotAccepted),
		errors.Is(err, entities.ErrNotActive),
		errors.Is(err, entities.ErrEscrowTerminal),
		errors.Is(err, entities.ErrAlreadyReleased),
		errors.Is(err, entities.ErrBucketCancelled),
		errors.Is(err, entities.ErrAlreadyDisputed),
		errors.Is(err, entities.ErrNotDisputed),
		errors.Is(err, entities.ErrVotingNotOpen),
		errors.Is(err, entities.ErrNotReleaseDue),
		errors.Is(err, entities.ErrStatusRegression):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current state", err, http.StatusConflict)

	case errors.Is(err, payments.ErrPayoutNotFound):
		return pkg.NewDomainError("PAYOUT_NOT_FOUND", "Payout not found at provider", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrRepositoryNotConfigured),
		errors.Is(err, usecase.ErrLockerNotConfigured),
		errors.Is(err, usecase.ErrIdentityNotConfigured),
		errors.Is(err, usecase.ErrPayoutGatewayNotConfigured),
		errors.Is(err, payments.ErrMercadoPagoGatewayNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Service not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "Operation timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
