package httphandler

import (
	"github.com/durgadao/anjoli-custody/pkg/middleware/errorhandler"
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/anjoli/v1", errorhandler.New())

	r.Post("/initialize", h.Initialize)
	r.Post("/donate", h.Donate)
	r.Get("/asset-id", h.GetAssetId)
	r.Get("/info", h.GetInfo)
	r.Get("/donations/:sender", h.GetDonations)
	r.Get("/invocations", h.GetInvocations)
	r.Get("/quote", h.GetQuote)
	return nil
}
