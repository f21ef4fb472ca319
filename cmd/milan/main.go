package main

import (
	logger "github.com/sirupsen/logrus"

	"github.com/gastonduartem/MILAN/internal/auth"
	"github.com/gastonduartem/MILAN/internal/compress"
	"github.com/gastonduartem/MILAN/internal/config"
	"github.com/gastonduartem/MILAN/internal/db"
	"github.com/gastonduartem/MILAN/internal/handlers"
	"github.com/gastonduartem/MILAN/internal/orders"
	"github.com/gastonduartem/MILAN/internal/router"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		panic(err)
	}

	admin := auth.Admin{User: conf.AdminUser, PassHash: conf.AdminPassHash}
	service := orders.NewService(database)

	handlerSet := handlers.NewHandlerSet([]byte(conf.Secret), conf.AuthCookieExpiresIn, admin, service)

	r := router.NewRouter(conf, handlerSet, compress.RequestUngzipper{})

	logger.Infof("MILAN listening on %s", conf.RunAddress)

	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}
}
