package routes

import (
	"github.com/gofiber/fiber/v2"
	whitelist_controller "github.com/sunthewhat/easy-cert-claim/api/controllers/whitelist"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	whitelistmodel "github.com/sunthewhat/easy-cert-claim/api/model/whitelistModel"
	"github.com/sunthewhat/easy-cert-claim/common"
)

func SetupWhitelistRoutes(router fiber.Router) {
	whitelistRepo := whitelistmodel.NewWhitelistRepository(common.Gorm)
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	ctrl := whitelist_controller.NewWhitelistController(whitelistRepo, eventRepo)

	whitelistGroup := router.Group("event/:id/whitelist")

	whitelistGroup.Get("", ctrl.List)
	whitelistGroup.Post("", ctrl.Add)
	whitelistGroup.Post("bulk", ctrl.AddBulk)
	whitelistGroup.Delete(":entryId", ctrl.Delete)
}
