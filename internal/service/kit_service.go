package service

import (
	"context"
	"educrate/internal/config"
	"educrate/internal/model"
	"educrate/internal/repository"
	"educrate/internal/util"
	"educrate/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const kitListCacheTTL = 5 * time.Minute

type KitService struct {
	Repo      *repository.LearningKitRepository
	UserRepo  *repository.UserRepository
	Generator *GeneratorService
	Redis     *redis.Client
	cfg       config.GeneratorConfig
}

func NewKitService(repo *repository.LearningKitRepository, userRepo *repository.UserRepository, gen *GeneratorService, rdb *redis.Client, cfg config.GeneratorConfig) *KitService {
	return &KitService{
		Repo:      repo,
		UserRepo:  userRepo,
		Generator: gen,
		Redis:     rdb,
		cfg:       cfg,
	}
}

type CreateKitRequest struct {
	UserID        string
	Topic         string
	SourceContent string
	TargetStyles  []model.LearningStyle
}

// CreateKit 为每个目标风格生成对应内容并落库。
// 未指定目标风格时回退到用户测评得到的风格，仍为空则按 textual 处理。
func (s *KitService) CreateKit(ctx context.Context, req CreateKitRequest) (*model.LearningKit, error) {
	topic := strings.TrimSpace(req.Topic)
	source := strings.TrimSpace(req.SourceContent)
	if topic == "" || source == "" {
		return nil, errors.New("topic and source_content are required")
	}

	user, err := s.UserRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	styles := req.TargetStyles
	if len(styles) == 0 {
		styles = user.LearningStyles
	}
	if len(styles) == 0 {
		styles = []model.LearningStyle{model.Textual}
	}
	for _, st := range styles {
		if !st.Valid() {
			return nil, util.ErrInvalidStyle
		}
	}

	kit := &model.LearningKit{
		UserID:          req.UserID,
		Topic:           topic,
		SourceContent:   source,
		ContentItems:    s.buildContentItems(topic, source, styles),
		LearningStyles:  styles,
		DifficultyLevel: "medium",
		EstimatedTime:   s.cfg.DefaultKitTime,
	}

	if err := s.Repo.Create(kit); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx, req.UserID)
	return kit, nil
}

func (s *KitService) buildContentItems(topic, source string, styles []model.LearningStyle) []model.ContentItem {
	items := []model.ContentItem{}
	for _, style := range styles {
		switch style {
		case model.Textual:
			summary := s.Generator.GenerateSummary(source, style)
			items = append(items, model.ContentItem{
				Type:          model.ContentSummary,
				LearningStyle: style,
				Content:       summary,
				Metadata:      map[string]interface{}{"word_count": len(strings.Fields(summary))},
			})
			cards := s.Generator.GenerateFlashcards(source)
			items = append(items, model.ContentItem{
				Type:          model.ContentFlashcards,
				LearningStyle: style,
				Cards:         cards,
				Metadata:      map[string]interface{}{"card_count": len(cards)},
			})
		case model.Auditory:
			items = append(items, model.ContentItem{
				Type:          model.ContentAudioLesson,
				LearningStyle: style,
				Content:       s.Generator.GenerateAudioScript(source),
				Metadata:      map[string]interface{}{"duration_estimate": "10-15 minutes"},
			})
		case model.Visual:
			items = append(items, model.ContentItem{
				Type:          model.ContentVisualDoodle,
				LearningStyle: style,
				Content:       s.Generator.GenerateVisualDescription(topic),
				Metadata:      map[string]interface{}{"complexity": "medium"},
			})
		}
	}
	return items
}

// ListByUser 先读缓存，未命中回源并写缓存
func (s *KitService) ListByUser(ctx context.Context, userID string) ([]model.LearningKit, error) {
	key := kitListCacheKey(userID)
	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var kits []model.LearningKit
			if err := json.Unmarshal([]byte(raw), &kits); err == nil {
				return kits, nil
			}
		}
	}

	kits, err := s.Repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(kits); err == nil {
			if err := s.Redis.Set(ctx, key, raw, kitListCacheTTL).Err(); err != nil {
				logger.Log.Warn("kit list cache write failed", zap.Error(err))
			}
		}
	}
	return kits, nil
}

func (s *KitService) Get(id string) (*model.LearningKit, error) {
	kit, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrKitNotFound
		}
		return nil, err
	}
	return kit, nil
}

func (s *KitService) invalidateListCache(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, kitListCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("kit list cache invalidation failed", zap.Error(err))
	}
}

func kitListCacheKey(userID string) string {
	return fmt.Sprintf("educrate:kits:user:%s", userID)
}
