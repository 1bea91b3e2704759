package main

import (
	"flag"
	"os"
	"runtime/debug"

	"sol-api/internal/config"
	"sol-api/internal/handler"
	"sol-api/internal/pkg/logger"
	"sol-api/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/sol-api.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			logger.Sync()
			os.Exit(1)
		}
	}()

	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 业务日志与 go-zero 框架日志统一输出到 zap
	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	serviceContext := svc.NewServiceContext(c)

	// MustNewServer 会按 c.Log 初始化 logx，之后再替换 writer
	server := rest.MustNewServer(c.RestConf)
	logger.SetupLogx()
	handler.RegisterHandlers(server, serviceContext)

	sg := zerosvc.NewServiceGroup()
	defer func() {
		logx.Info("Shutting down services...")
		sg.Stop()
	}()
	sg.Add(server)

	logger.Infof("Starting %s at %s:%d", c.Name, c.Host, c.Port)

	// 阻塞运行，SIGTERM 由 go-zero proc 处理并优雅退出
	sg.Start()
}
