package xtpl

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/omeyang/xsupport/pkg/primitive/xstr"
	"github.com/omeyang/xsupport/pkg/security/xident"
)

// Repository 解析并缓存模板。通过 [NewRepository] 创建。
type Repository struct {
	cache *lru.Cache[string, *Template]
	funcs template.FuncMap
	ident xident.Generator
}

// Template 是一个解析完成的模板句柄，不可变。
type Template struct {
	name string
	tpl  *template.Template
}

// NewRepository 创建模板仓库。
func NewRepository(opts ...Option) (*Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cache, err := lru.New[string, *Template](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("xtpl: create cache: %w", err)
	}

	return &Repository{
		cache: cache,
		funcs: o.funcs,
		ident: xident.NewUUIDGenerator(),
	}, nil
}

// FromLiteral 解析字面量模板源文本。
// 相同源文本命中缓存时返回同一个 [Template]。
func (r *Repository) FromLiteral(source string) (*Template, error) {
	trimmed, ok := xstr.TrimNonEmpty(source)
	if !ok {
		return nil, ErrEmptyTemplate
	}

	if cached, ok := r.cache.Get(trimmed); ok {
		return cached, nil
	}

	// 字面量模板没有外部名字，用随机标识符命名。
	name := r.ident.GenerateXMLSafe()
	tpl := template.New(name)
	if r.funcs != nil {
		tpl = tpl.Funcs(r.funcs)
	}
	tpl, err := tpl.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	t := &Template{name: name, tpl: tpl}
	r.cache.Add(trimmed, t)
	return t, nil
}

// Len 返回缓存中的模板数量。
func (r *Repository) Len() int {
	return r.cache.Len()
}

// Name 返回模板的仓库内名字。
func (t *Template) Name() string {
	return t.name
}

// Merge 将模板与数据合并为字符串。
// 执行失败时返回 [ErrMergeFailed]，不产出半成品输出。
func (t *Template) Merge(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMergeFailed, err)
	}
	return buf.String(), nil
}

// MergeTo 将模板与数据合并后写入 w。
// 注意执行中途失败时 w 可能已收到部分输出。
func (t *Template) MergeTo(w io.Writer, data any) error {
	if err := t.tpl.Execute(w, data); err != nil {
		return fmt.Errorf("%w: %v", ErrMergeFailed, err)
	}
	return nil
}
