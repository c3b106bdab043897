package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix  = "user:%d"
	SkillKeyPrefix = "skill:%d"
	SkillListKey   = "skills:all"
)

const (
	UserTTL      = 5 * time.Minute
	SkillTTL     = 30 * time.Minute
	SkillListTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func SkillKey(skillID uint) string {
	return fmt.Sprintf(SkillKeyPrefix, skillID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateSkills(ctx context.Context) {
	Invalidate(ctx, SkillListKey)
}
