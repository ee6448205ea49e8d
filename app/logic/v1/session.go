package v1

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/campus-sathi/campus-sathi/app/core"
	pkgerrors "github.com/campus-sathi/campus-sathi/pkg/errors"
	"github.com/campus-sathi/campus-sathi/pkg/i18n"
	"github.com/campus-sathi/campus-sathi/pkg/types"
	"github.com/campus-sathi/campus-sathi/pkg/utils"
)

type SessionLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSessionLogic(ctx context.Context, core *core.Core) *SessionLogic {
	return &SessionLogic{
		ctx:  ctx,
		core: core,
	}
}

// GetOrCreate resolves the caller's session. A known, active, unexpired token
// is reused; anything else silently becomes a fresh session so clients never
// have to handle "session expired" as an error.
func (l *SessionLogic) GetOrCreate(token, platform, externalUserID, preferredLanguage string) (*types.Session, error) {
	if platform == "" {
		platform = types.PLATFORM_WEB
	}

	if token != "" {
		session, err := l.core.Store().SessionStore().Get(l.ctx, token)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, pkgerrors.New("SessionLogic.GetOrCreate.Get", i18n.ERROR_INTERNAL, err)
		}
		if session != nil && session.IsActive && !session.Expired(time.Now()) {
			return session, nil
		}
		if session != nil && session.IsActive {
			// expired but not yet swept
			if err = l.core.Store().SessionStore().SetInactive(l.ctx, session.ID); err != nil {
				return nil, pkgerrors.New("SessionLogic.GetOrCreate.SetInactive", i18n.ERROR_INTERNAL, err)
			}
		}
	}

	user, err := l.resolveUser(platform, externalUserID, preferredLanguage)
	if err != nil {
		return nil, err
	}

	language := preferredLanguage
	if language == "" {
		language = user.PreferredLanguage
	}
	if language == "" {
		language = types.WORKING_LANGUAGE
	}

	session := types.Session{
		ID:               utils.GenSessionToken(),
		UserID:           user.ID,
		Platform:         platform,
		Language:         language,
		IsActive:         true,
		CreatedAt:        time.Now().Unix(),
		LatestAccessTime: time.Now().Unix(),
	}

	if err = l.core.Store().SessionStore().Create(l.ctx, session); err != nil {
		return nil, pkgerrors.New("SessionLogic.GetOrCreate.Create", i18n.ERROR_INTERNAL, err)
	}
	return &session, nil
}

// resolveUser reuses the user identified by platform+external id, creating a
// record on first contact. Anonymous callers get a throwaway identity.
func (l *SessionLogic) resolveUser(platform, externalUserID, preferredLanguage string) (*types.User, error) {
	if externalUserID == "" {
		user := types.User{
			ID:                utils.GenUniqIDStr(),
			ExternalID:        "",
			Platform:          platform,
			PreferredLanguage: preferredLanguage,
			CreatedAt:         time.Now().Unix(),
		}
		if err := l.core.Store().UserStore().Create(l.ctx, user); err != nil {
			return nil, pkgerrors.New("SessionLogic.resolveUser.Create", i18n.ERROR_INTERNAL, err)
		}
		return &user, nil
	}

	user, err := l.core.Store().UserStore().GetByExternalID(l.ctx, platform, externalUserID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.New("SessionLogic.resolveUser.Get", i18n.ERROR_INTERNAL, err)
	}
	if user != nil {
		return user, nil
	}

	created := types.User{
		ID:                utils.GenUniqIDStr(),
		ExternalID:        externalUserID,
		Platform:          platform,
		PreferredLanguage: preferredLanguage,
		CreatedAt:         time.Now().Unix(),
	}
	if err = l.core.Store().UserStore().Create(l.ctx, created); err != nil {
		return nil, pkgerrors.New("SessionLogic.resolveUser.CreateExternal", i18n.ERROR_INTERNAL, err)
	}
	return &created, nil
}

// RecentHistory returns the last turns of a session, oldest first.
func (l *SessionLogic) RecentHistory(sessionID string) ([]*types.Message, error) {
	list, err := l.core.Store().MessageStore().ListRecent(l.ctx, sessionID, types.MAX_HISTORY_TURNS)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.New("SessionLogic.RecentHistory", i18n.ERROR_INTERNAL, err)
	}
	return list, nil
}

func (l *SessionLogic) Close(token string) error {
	session, err := l.core.Store().SessionStore().Get(l.ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pkgerrors.New("SessionLogic.Close", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return pkgerrors.New("SessionLogic.Close", i18n.ERROR_INTERNAL, err)
	}

	if err = l.core.Store().SessionStore().SetInactive(l.ctx, session.ID); err != nil {
		return pkgerrors.New("SessionLogic.Close.SetInactive", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// SweepExpired deactivates all sessions idle beyond the timeout.
func (l *SessionLogic) SweepExpired() (int64, error) {
	cutoff := time.Now().Add(-types.SESSION_TIMEOUT).Unix()
	swept, err := l.core.Store().SessionStore().SweepExpired(l.ctx, cutoff)
	if err != nil {
		return 0, pkgerrors.New("SessionLogic.SweepExpired", i18n.ERROR_INTERNAL, err)
	}
	return swept, nil
}

func (l *SessionLogic) CountActive() (int64, error) {
	total, err := l.core.Store().SessionStore().CountActive(l.ctx)
	if err != nil {
		return 0, pkgerrors.New("SessionLogic.CountActive", i18n.ERROR_INTERNAL, err)
	}
	return total, nil
}
