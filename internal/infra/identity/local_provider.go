package identity

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const localIssuer = "inventory-local"

// LocalProvider verifies HS256 tokens it issued itself and keeps identities
// in memory. It stands in for Firebase Auth in development.
type LocalProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu         sync.RWMutex
	identities map[string]*service.Identity
}

// NewLocalProvider creates a provider signing with secret.
func NewLocalProvider(secret string, ttl time.Duration) (*LocalProvider, error) {
	if secret == "" {
		return nil, errors.New("local identity secret must be provided")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &LocalProvider{
		secret:     []byte(secret),
		ttl:        ttl,
		now:        time.Now,
		identities: make(map[string]*service.Identity),
	}, nil
}

// Register adds or replaces an identity.
func (p *LocalProvider) Register(identity service.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := identity
	stored.CustomClaims = maps.Clone(identity.CustomClaims)
	if stored.CustomClaims == nil {
		stored.CustomClaims = map[string]any{}
	}
	p.identities[identity.UID] = &stored
}

// IssueToken signs a token carrying the identity's current custom claims.
func (p *LocalProvider) IssueToken(uid string) (string, error) {
	p.mu.RLock()
	identity, ok := p.identities[uid]
	p.mu.RUnlock()
	if !ok {
		return "", errors.Wrap(service.ErrIdentityNotFound, uid)
	}

	now := p.now()
	claims := jwt.MapClaims{
		"iss":   localIssuer,
		"sub":   identity.UID,
		"iat":   now.Unix(),
		"exp":   now.Add(p.ttl).Unix(),
		"email": identity.Email,
		"name":  identity.Name,
	}
	for key, value := range identity.CustomClaims {
		claims[key] = value
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (p *LocalProvider) VerifyToken(_ context.Context, token string) (*entity.Caller, error) {
	if strings.TrimSpace(token) == "" {
		return nil, service.ErrInvalidToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return p.secret, nil
	},
		jwt.WithIssuer(localIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}
	uid, err := claims.GetSubject()
	if err != nil || uid == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "missing subject")
	}

	return callerFromClaims(uid, claims), nil
}

func (p *LocalProvider) GetIdentity(_ context.Context, uid string) (*service.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	identity, ok := p.identities[uid]
	if !ok {
		return nil, errors.Wrap(service.ErrIdentityNotFound, uid)
	}

	return cloneIdentity(identity), nil
}

func (p *LocalProvider) GetIdentityByEmail(_ context.Context, email string) (*service.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, identity := range p.identities {
		if strings.EqualFold(identity.Email, email) {
			return cloneIdentity(identity), nil
		}
	}

	return nil, errors.Wrap(service.ErrIdentityNotFound, email)
}

func (p *LocalProvider) SetCustomClaims(_ context.Context, uid string, claims map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	identity, ok := p.identities[uid]
	if !ok {
		return errors.Wrap(service.ErrIdentityNotFound, uid)
	}
	identity.CustomClaims = maps.Clone(claims)

	return nil
}

func cloneIdentity(identity *service.Identity) *service.Identity {
	out := *identity
	out.CustomClaims = maps.Clone(identity.CustomClaims)

	return &out
}
