package api

import (
	"github.com/durgadao/anjoli-custody/common"
	"github.com/durgadao/anjoli-custody/modules/anjoli/api/httphandler"
	"github.com/durgadao/anjoli-custody/modules/anjoli/usecase"
)

func NewHTTPHandler(network common.Network, usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(network, usecase)
}
