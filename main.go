package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/sunthewhat/easy-cert-claim/api"
	"github.com/sunthewhat/easy-cert-claim/common/config"
	"github.com/sunthewhat/easy-cert-claim/common/gorm"
	"github.com/sunthewhat/easy-cert-claim/common/util"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()
	config.LoadConfig()
	if *isPushDB {
		gorm.Push_db()
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}

	api.InitFiber()
}
