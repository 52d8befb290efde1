// Package main はアプリケーションのエントリーポイントを提供します。
package main

import "github.com/stsysd/koyomi/cli"

func main() {
	cli.Execute()
}
