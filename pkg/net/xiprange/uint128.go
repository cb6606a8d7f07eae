package xiprange

import "encoding/binary"

// uint128 是定长 128 位无符号整数，hi 为高 64 位，lo 为低 64 位。
// IPv4 地址只占用 lo 的低 32 位，hi 恒为 0。
// 字节数组按大端解释：位 0 对应最后一个字节的最低位。
type uint128 struct {
	hi uint64
	lo uint64
}

func (u uint128) and(v uint128) uint128 {
	return uint128{u.hi & v.hi, u.lo & v.lo}
}

func (u uint128) or(v uint128) uint128 {
	return uint128{u.hi | v.hi, u.lo | v.lo}
}

// notMasked 返回按位取反后截断到 bits 位宽的结果。
// 32 位宽度时高位保持为 0，避免污染 IPv4 表示。
func (u uint128) notMasked(bits int) uint128 {
	ones := onesWord(bits)
	return uint128{^u.hi & ones.hi, ^u.lo & ones.lo}
}

// onesWord 返回 bits 位宽的全 1 字。bits 只会是 32 或 128。
func onesWord(bits int) uint128 {
	if bits == 32 {
		return uint128{0, uint64(^uint32(0))}
	}
	return uint128{^uint64(0), ^uint64(0)}
}

// maskWord 构造前 maskSize 位为 1、其余为 0 的掩码字。
// 调用方保证 0 <= maskSize <= bits 且 bits ∈ {32, 128}。
func maskWord(maskSize, bits int) uint128 {
	if bits == 32 {
		// maskSize == 0 时移位 32，Go 定义结果为 0
		return uint128{0, uint64(^uint32(0) << (32 - maskSize))}
	}
	if maskSize <= 64 {
		return uint128{^uint64(0) << (64 - maskSize), 0}
	}
	return uint128{^uint64(0), ^uint64(0) << (128 - maskSize)}
}

// wordFromBytes 把大端字节数组转为 uint128。
// 等价于按“位 i 取自 bytes[len-1-i/8] 的第 i%8 位”的映射逐位装填，
// 调用方保证 len(b) 为 4 或 16。
func wordFromBytes(b []byte) uint128 {
	if len(b) == 4 {
		return uint128{0, uint64(binary.BigEndian.Uint32(b))}
	}
	return uint128{binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:])}
}

// wordToBytes 是 wordFromBytes 的精确逆变换，bits ∈ {32, 128}。
func wordToBytes(u uint128, bits int) []byte {
	if bits == 32 {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(u.lo))
		return b
	}
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}
