package handlers

import (
	"github.com/finbooks/bookkeeping_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// The "paystatus" tag constrains status fields to exactly {Paid, Unpaid}.
// Registered at package init so every route registration path sees it.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paystatus", func(fl validator.FieldLevel) bool {
			return domain.PayStatus(fl.Field().String()).IsValid()
		})
	}
}
