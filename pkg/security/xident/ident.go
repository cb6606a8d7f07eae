package xident

import "github.com/google/uuid"

// Generator 生成随机标识符。实现必须是并发安全的。
type Generator interface {
	// Generate 返回一个新的非空标识符。
	Generate() string
	// GenerateXMLSafe 返回可用作 XML ID 的标识符。
	GenerateXMLSafe() string
}

// UUIDGenerator 基于版本 4 UUID 的 [Generator] 实现。
// 零值即可使用。
type UUIDGenerator struct{}

// NewUUIDGenerator 创建 UUID 标识符生成器。
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate 返回标准 8-4-4-4-12 形式的 UUID 字符串。
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// GenerateXMLSafe 返回带下划线前缀的 UUID 字符串，
// 保证首字符不是数字。
func (g *UUIDGenerator) GenerateXMLSafe() string {
	return "_" + uuid.NewString()
}
