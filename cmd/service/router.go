package service

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campus-sathi/campus-sathi/app/core"
	"github.com/campus-sathi/campus-sathi/app/response"
	"github.com/campus-sathi/campus-sathi/cmd/service/handler"
	"github.com/campus-sathi/campus-sathi/cmd/service/middleware"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(gin.Recovery())
	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)

	s.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := s.Engine.Group("/api/v1")
	{
		chat := apiV1.Group("/chat")
		{
			chat.POST("", middleware.IPLimit("chat", 2, 5), s.Chat)
			chat.GET("/welcome", middleware.IPLimit("welcome", 5, 10), s.Welcome)
			chat.DELETE("/session", s.CloseSession)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/faqs", s.CreateFAQ)
			admin.DELETE("/faqs/:id", s.DeleteFAQ)
			admin.POST("/documents", s.CreateDocument)
			admin.DELETE("/documents/:id", s.DeleteDocument)
			admin.DELETE("/sources/:source", s.DeleteSource)
			admin.GET("/stats", s.Stats)
			admin.POST("/sessions/sweep", s.SweepSessions)
		}
	}
}
