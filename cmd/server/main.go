package main

import (
	"flag"

	"github.com/rakeshutekar/github-mcp/internal/config"
	"github.com/rakeshutekar/github-mcp/internal/handler"
	"github.com/rakeshutekar/github-mcp/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/githubmcp.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx, err := svc.NewServiceContext(c)
	logx.Must(err)

	stopSweeper := ctx.Sessions.StartSweeper()
	defer stopSweeper()

	handler.RegisterHandlers(server, ctx)

	logx.Infof("Starting github-mcp server at %s:%d, tools=%d", c.Host, c.Port, ctx.Registry.Len())
	server.Start()
}
