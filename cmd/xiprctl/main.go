// xiprctl 是 IP/CIDR 工具箱的命令行入口。
//
// 用法:
//
//	xiprctl <命令> [命令参数]
//
// 命令:
//
//	check <cidr> <addr>              判断地址是否落在 CIDR 块内
//	net <cidr>                       显示 CIDR 块的网络信息
//	merge <cidr>...                  合并多个 CIDR 块为最小前缀集合
//	allowed --config <file> <addr>   按 ACL 配置判断地址是否放行
//	help                             显示帮助信息
//
// 退出码:
//
//	0: 执行成功（check/allowed: 地址命中/放行）
//	1: 执行失败（check/allowed: 地址未命中/被拒绝）
//	2: 参数错误（CIDR 语法错误、缺少参数、未知命令等）
//
// 示例:
//
//	xiprctl check 192.168.0.0/16 192.168.1.7
//	xiprctl net 10.0.0.5/24
//	xiprctl merge 10.0.0.0/25 10.0.0.128/25
//	xiprctl allowed --config acl.yaml 203.0.113.9
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
