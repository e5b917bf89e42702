package routes

import (
	"github.com/gofiber/fiber/v2"
	event_controller "github.com/sunthewhat/easy-cert-claim/api/controllers/event"
	eventmodel "github.com/sunthewhat/easy-cert-claim/api/model/eventModel"
	"github.com/sunthewhat/easy-cert-claim/common"
	"github.com/sunthewhat/easy-cert-claim/common/util"
)

func SetupEventRoutes(router fiber.Router, public fiber.Router, templates *util.TemplateStore) {
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	ctrl := event_controller.NewEventController(eventRepo, templates)

	public.Get("event", ctrl.GetPublic)

	eventGroup := router.Group("event")

	eventGroup.Get("", ctrl.GetAll)
	eventGroup.Get(":id", ctrl.GetById)
	eventGroup.Post("", ctrl.Create)
	eventGroup.Patch(":id", ctrl.Update)
	eventGroup.Delete(":id", ctrl.Delete)
}
