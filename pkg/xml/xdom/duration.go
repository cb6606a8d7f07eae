package xdom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration 解析 xs:duration 文本为 [time.Duration]。
//
// 支持天、时、分、秒分量，如 "P2DT3H4M5.5S"、"-PT90S"。
// 小数只允许出现在秒分量上；含年或月分量的值因长度不定被拒绝。
func ParseDuration(s string) (time.Duration, error) {
	input := strings.TrimSpace(s)
	rest := input
	if rest == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidDuration)
	}

	negative := false
	if rest[0] == '-' {
		negative = true
		rest = rest[1:]
	}
	if len(rest) < 2 || rest[0] != 'P' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}
	rest = rest[1:]

	datePart := rest
	timePart := ""
	if i := strings.IndexByte(rest, 'T'); i >= 0 {
		datePart, timePart = rest[:i], rest[i+1:]
		if timePart == "" {
			return 0, fmt.Errorf("%w: %q: empty time part", ErrInvalidDuration, input)
		}
	}

	var total time.Duration
	components := 0

	for datePart != "" {
		value, designator, fractional, next, err := nextComponent(datePart)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDuration, input, err)
		}
		if fractional {
			return 0, fmt.Errorf("%w: %q: only the seconds component may carry a fraction", ErrInvalidDuration, input)
		}
		switch designator {
		case 'Y', 'M':
			return 0, fmt.Errorf("%w: %q: year and month components have no fixed length", ErrInvalidDuration, input)
		case 'D':
			total += time.Duration(value * float64(24*time.Hour))
		default:
			return 0, fmt.Errorf("%w: %q: unexpected designator %c", ErrInvalidDuration, input, designator)
		}
		components++
		datePart = next
	}

	for timePart != "" {
		value, designator, fractional, next, err := nextComponent(timePart)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDuration, input, err)
		}
		if fractional && designator != 'S' {
			return 0, fmt.Errorf("%w: %q: only the seconds component may carry a fraction", ErrInvalidDuration, input)
		}
		switch designator {
		case 'H':
			total += time.Duration(value * float64(time.Hour))
		case 'M':
			total += time.Duration(value * float64(time.Minute))
		case 'S':
			total += time.Duration(value * float64(time.Second))
		default:
			return 0, fmt.Errorf("%w: %q: unexpected designator %c", ErrInvalidDuration, input, designator)
		}
		components++
		timePart = next
	}

	if components == 0 {
		return 0, fmt.Errorf("%w: %q: no components", ErrInvalidDuration, input)
	}
	if negative {
		total = -total
	}
	return total, nil
}

// nextComponent 从头部取出一个 数字+标识符 分量。
// fractional 标记数字是否带小数点，小数只允许出现在秒分量上，
// 由调用方按标识符裁决。
func nextComponent(s string) (value float64, designator byte, fractional bool, rest string, err error) {
	i := 0
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		if s[i] == '.' {
			fractional = true
		}
		i++
	}
	if i == 0 || i == len(s) {
		return 0, 0, false, "", fmt.Errorf("malformed component %q", s)
	}

	value, err = strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, 0, false, "", fmt.Errorf("malformed number %q", s[:i])
	}
	return value, s[i], fractional, s[i+1:], nil
}

// FormatDuration 输出 xs:duration 文本。
// 只使用天、时、分、秒分量，秒保留到毫秒，零值输出 "PT0S"。
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}

	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteByte('P')

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	millis := d.Round(time.Millisecond) / time.Millisecond

	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hours > 0 || minutes > 0 || millis > 0 {
		b.WriteByte('T')
		if hours > 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if minutes > 0 {
			fmt.Fprintf(&b, "%dM", minutes)
		}
		if millis > 0 {
			seconds := millis / 1000
			frac := millis % 1000
			if frac == 0 {
				fmt.Fprintf(&b, "%dS", seconds)
			} else {
				fmt.Fprintf(&b, "%d.%03dS", seconds, frac)
			}
		}
	}
	return b.String()
}
