package common

import (
	"github.com/minio/minio-go/v7"
	"github.com/sunthewhat/easy-cert-claim/type/shared"
	"gorm.io/gorm"
)

var Config *shared.Config
var Gorm *gorm.DB
var MinIOClient *minio.Client
