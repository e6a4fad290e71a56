package model

const (
	StatusPublished = "published"
	StatusHidden    = "hidden"
)

// TargetKind 反应目标的类型
type TargetKind string

const (
	KindPost    TargetKind = "post"
	KindComment TargetKind = "comment"
	KindUser    TargetKind = "user"
)

func (k TargetKind) Valid() bool {
	switch k {
	case KindPost, KindComment, KindUser:
		return true
	}
	return false
}

// Target 可被点赞或评分的实体
type Target interface {
	Kind() TargetKind
	TargetID() uint64
}

// Owned 有所有者的实体，软删除只允许所有者执行
type Owned interface {
	Target
	OwnerID() uint64
}

// All 需要迁移的全部模型
func All() []any {
	return []any{
		&User{},
		&Tag{},
		&Post{},
		&PostTag{},
		&PostImage{},
		&Comment{},
		&Reaction{},
		&Follow{},
	}
}
