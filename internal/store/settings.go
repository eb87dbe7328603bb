package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/ent/usersetting"
)

// settingsRepo implements SettingsRepo.
type settingsRepo struct {
	s *Store
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	us, err := r.s.clientFor(ctx).UserSetting.Query().
		Where(usersetting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return us.Val, true, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	return r.s.InTx(ctx, func(ctx context.Context) error {
		client := r.s.clientFor(ctx)
		n, err := client.UserSetting.Update().
			Where(usersetting.Key(key)).
			SetVal(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update setting %q: %w", key, err)
		}
		if n > 0 {
			return nil
		}
		if err := client.UserSetting.Create().
			SetKey(key).
			SetVal(value).
			Exec(ctx); err != nil {
			return fmt.Errorf("create setting %q: %w", key, err)
		}
		return nil
	})
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	_, err := r.s.clientFor(ctx).UserSetting.Delete().
		Where(usersetting.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}
