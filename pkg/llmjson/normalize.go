package llmjson

// ==================== 结构描述 ====================

// Kind 字段的容器类型
type Kind int

const (
	KindText Kind = iota
	KindList
	KindObject
)

// Field 单个字段的期望类型
// Kind 为 KindObject 时 Fields 描述其子字段，Fields 为空表示任意键值的对象
type Field struct {
	Kind   Kind
	Fields Shape
}

// Shape 一个对象期望拥有的字段
type Shape map[string]Field

// Text 字符串字段，缺省为 ""
func Text() Field { return Field{Kind: KindText} }

// List 数组字段，缺省为 []
func List() Field { return Field{Kind: KindList} }

// Object 对象字段，缺省为按 fields 补齐后的对象
func Object(fields Shape) Field { return Field{Kind: KindObject, Fields: fields} }

// ==================== 补齐 ====================

// Normalize 按 shape 补齐模型返回的对象，保证每个声明的字段都存在且容器类型正确
//
// 规则：
//   - 缺失、null 或容器类型不对的字段替换为缺省值
//   - 类型正确的字段原样透传，不校验数组元素
//   - shape 之外的键原样保留
//
// 不修改入参，不会失败，对已补齐的结果再次调用结果不变。
func Normalize(obj map[string]any, shape Shape) map[string]any {
	out := make(map[string]any, len(obj)+len(shape))
	for k, v := range obj {
		out[k] = v
	}

	for name, field := range shape {
		out[name] = normalizeField(obj[name], field)
	}

	return out
}

func normalizeField(v any, field Field) any {
	switch field.Kind {
	case KindText:
		if s, ok := v.(string); ok {
			return s
		}
		return ""
	case KindList:
		if list, ok := v.([]any); ok {
			return list
		}
		return []any{}
	case KindObject:
		m, _ := v.(map[string]any)
		return Normalize(m, field.Fields)
	}
	return v
}
