package svc

import (
	"sol-api/internal/config"
	"sol-api/internal/consts"
)

// ServiceContext 包含 HTTP 服务共享的只读资源
type ServiceContext struct {
	Config config.Config
}

// NewServiceContext 创建一个新的服务上下文
func NewServiceContext(c config.Config) *ServiceContext {
	if c.SignerConf.MaxMessageBytes <= 0 {
		c.SignerConf.MaxMessageBytes = consts.DefaultMaxMessageBytes
	}
	return &ServiceContext{
		Config: c,
	}
}
