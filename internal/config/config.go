package config

import (
	"sol-api/internal/pkg/logger"

	"github.com/zeromicro/go-zero/rest"
)

type LogConfig struct {
	Format   string `json:"format,default=console"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:"log_dir,optional"`       // 日志目录（可为相对路径或绝对路径），为空时只输出到 stdout
	Level    string `json:"level,default=info"`     // 日志级别：debug / info / warn / error
	Compress bool   `json:"compress,optional"`      // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// SignerConfig 消息签名相关限制
type SignerConfig struct {
	MaxMessageBytes int `json:"max_message_bytes,default=4096"` // 单条待签名消息的最大字节数
}

// Config 是主配置结构体，go-zero rest 配置内嵌其中
type Config struct {
	rest.RestConf

	LogConf    LogConfig    `json:"logger"` // 日志配置，缺省时使用各字段的 default
	SignerConf SignerConfig `json:"signer"` // 签名配置，缺省时使用各字段的 default
}
