package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-claim/common"
	"github.com/sunthewhat/easy-cert-claim/common/util"
)

const defaultTemplateFetchTimeout = 15 * time.Second

func Init(router fiber.Router) {
	api := router.Group("api")

	publicGroup := api.Group("public")

	templates := newTemplateStore()

	SetupIssuanceRoutes(publicGroup, templates)
	SetupEventRoutes(api, publicGroup, templates)
	SetupWhitelistRoutes(api)
}

func newTemplateStore() *util.TemplateStore {
	timeout := defaultTemplateFetchTimeout
	if common.Config.TemplateFetchTimeoutSeconds != nil {
		timeout = time.Duration(*common.Config.TemplateFetchTimeoutSeconds) * time.Second
	}

	return util.NewTemplateStore(
		common.MinIOClient,
		*common.Config.MinIoEndpoint,
		util.MinIOSecure(),
		*common.Config.BucketResource,
		timeout,
	)
}
