package main

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xsupport/pkg/net/xacl"
	"github.com/omeyang/xsupport/pkg/net/xiprange"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，统一映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xiprctl",
		Usage:          "IP/CIDR 工具箱",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"XSupport Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createCheckCommand(),
		createNetCommand(),
		createMergeCommand(),
		createAllowedCommand(),
	}
}

// createCheckCommand 创建 check 子命令（成员判断）。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "判断地址是否落在 CIDR 块内",
		ArgsUsage: "<cidr> <addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return &usageError{msg: "check 需要 <cidr> <addr> 两个参数"}
			}
			return cmdCheck(cmd.Root().Writer, args[0], args[1])
		},
	}
}

// createNetCommand 创建 net 子命令（网络信息）。
func createNetCommand() *cli.Command {
	return &cli.Command{
		Name:      "net",
		Usage:     "显示 CIDR 块的网络信息",
		ArgsUsage: "<cidr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "net 需要一个 <cidr> 参数"}
			}
			return cmdNet(cmd.Root().Writer, args[0])
		},
	}
}

// createMergeCommand 创建 merge 子命令（前缀合并）。
func createMergeCommand() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "合并多个 CIDR 块为最小前缀集合",
		ArgsUsage: "<cidr>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "merge 需要至少一个 <cidr> 参数"}
			}
			return cmdMerge(cmd.Root().Writer, args)
		},
	}
}

// createAllowedCommand 创建 allowed 子命令（ACL 判定）。
func createAllowedCommand() *cli.Command {
	return &cli.Command{
		Name:      "allowed",
		Usage:     "按 ACL 配置判断地址是否放行",
		ArgsUsage: "<addr>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "ACL 配置文件 (yaml/json)",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "allowed 需要一个 <addr> 参数"}
			}
			return cmdAllowed(cmd.Root().Writer, cmd.String("config"), args[0])
		},
	}
}

// cmdCheck 输出成员判断结果，未命中映射为退出码 1。
func cmdCheck(w io.Writer, cidrBlock, addr string) error {
	r, err := xiprange.ParseCIDRBlock(cidrBlock)
	if err != nil {
		return &usageError{msg: err.Error()}
	}
	candidate, err := netip.ParseAddr(addr)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无效地址 %q: %v", addr, err)}
	}

	if !r.Contains(candidate) {
		fmt.Fprintf(w, "%s 不在 %s 内\n", addr, r)
		return &exitError{code: 1}
	}
	fmt.Fprintf(w, "%s 在 %s 内\n", addr, r)
	return nil
}

// cmdNet 输出 CIDR 块的网络信息。
func cmdNet(w io.Writer, cidrBlock string) error {
	r, err := xiprange.ParseCIDRBlock(cidrBlock)
	if err != nil {
		return &usageError{msg: err.Error()}
	}

	ipr := r.IPRange()
	fmt.Fprintf(w, "网络:     %s\n", r.NetworkAddr())
	fmt.Fprintf(w, "前缀长度: %d\n", r.MaskSize())
	fmt.Fprintf(w, "起始地址: %s\n", ipr.From())
	fmt.Fprintf(w, "结束地址: %s\n", ipr.To())
	if host, ok := r.HostAddr(); ok {
		fmt.Fprintf(w, "主机地址: %s\n", host)
	}
	return nil
}

// cmdMerge 输出合并后的最小前缀集合。
func cmdMerge(w io.Writer, cidrBlocks []string) error {
	ranges := make([]xiprange.Range, 0, len(cidrBlocks))
	for _, block := range cidrBlocks {
		r, err := xiprange.ParseCIDRBlock(block)
		if err != nil {
			return &usageError{msg: err.Error()}
		}
		ranges = append(ranges, r)
	}

	prefixes, err := xiprange.MergeBlocks(ranges)
	if err != nil {
		return err
	}

	out := make([]string, len(prefixes))
	for i, p := range prefixes {
		out[i] = p.String()
	}
	fmt.Fprintln(w, strings.Join(out, "\n"))
	return nil
}

// cmdAllowed 按 ACL 配置判定地址，拒绝映射为退出码 1。
func cmdAllowed(w io.Writer, configPath, addr string) error {
	candidate, err := netip.ParseAddr(addr)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("无效地址 %q: %v", addr, err)}
	}

	list, err := xacl.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("加载配置 %s: %w", configPath, err)
	}

	if !list.Allowed(candidate) {
		fmt.Fprintf(w, "%s 被拒绝\n", addr)
		return &exitError{code: 1}
	}
	fmt.Fprintf(w, "%s 放行\n", addr)
	return nil
}
