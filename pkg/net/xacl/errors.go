package xacl

import "errors"

var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xacl: config path can not be empty")

	// ErrUnsupportedFormat 表示配置文件扩展名不是 .yaml/.yml/.json。
	ErrUnsupportedFormat = errors.New("xacl: unsupported config format")

	// ErrLoadFailed 表示配置文件读取或解析失败。
	ErrLoadFailed = errors.New("xacl: load config failed")
)
