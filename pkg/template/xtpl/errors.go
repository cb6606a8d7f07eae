package xtpl

import "errors"

var (
	// ErrEmptyTemplate 表示模板源文本为空或仅含空白。
	ErrEmptyTemplate = errors.New("xtpl: empty template source")

	// ErrInvalidTemplate 表示模板源文本解析失败。
	ErrInvalidTemplate = errors.New("xtpl: invalid template source")

	// ErrMergeFailed 表示模板与数据合并时执行失败。
	ErrMergeFailed = errors.New("xtpl: template merge failed")
)
