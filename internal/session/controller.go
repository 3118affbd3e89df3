// internal/session/controller.go
package session

import (
	"context"
	"fmt"
	"time"

	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/srs"

	"github.com/google/uuid"
)

// State はセッションの状態機械の状態です。
// Loading / Grading / Advancing は同期呼び出しの内部で遷移する一時状態ですが、
// テストと可観測性のために明示しています。
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePresenting
	StateGrading
	StateAdvancing
	StateCompleted
)

var stateNames = map[State]string{
	StateIdle:       "idle",
	StateLoading:    "loading",
	StatePresenting: "presenting",
	StateGrading:    "grading",
	StateAdvancing:  "advancing",
	StateCompleted:  "completed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Store はコントローラが依存する復習カードストアの境界です。
// Upsert は冪等な単件書き込みで、グレード1回につき1回呼ばれます。
type Store interface {
	FindByLearner(ctx context.Context, learnerID uuid.UUID) ([]model.ReviewCard, error)
	Upsert(ctx context.Context, card *model.ReviewCard) error
}

// Config はセッションの設定です。これ以外の設定項目はありません。
type Config struct {
	LearnerID     uuid.UUID
	ReferenceTime time.Time // レビュー対象判定の基準時刻。ゼロ値なら現在時刻
	Cap           int       // 1セッションの最大カード枚数。0以下で無制限
}

// Summary は完了したセッションの集計です。
type Summary struct {
	Reviewed int
	Lapsed   int
	Duration time.Duration
}

// Controller は学習者1人の1回の復習セッションを進める状態機械です。
// キューとカウンタを通常のフィールドとして持ち、セッションごとに新規作成して
// 完了後は破棄します。プロセス全体で共有する状態はありません。
//
// 同一インスタンスへの並行呼び出しは安全ではありません（1セッション1スレッド、
// グレードは常に1件ずつ）。別インスタンス同士は独立しているので並行利用できます。
type Controller struct {
	store Store
	cfg   Config
	clock func() time.Time

	state       State
	queue       []model.ReviewCard
	reviewed    int
	lapsed      int
	startedAt   time.Time
	completedAt time.Time
}

func NewController(store Store, cfg Config) *Controller {
	return &Controller{
		store: store,
		cfg:   cfg,
		clock: time.Now,
		state: StateIdle,
	}
}

// Start はストアからレビュー対象のスナップショットを1回だけ取得してキューを作り、
// 先頭のカードを返します。対象が1枚もなければ nil を返して即 Completed になります。
// セッション途中でスナップショットを取り直すことはありません。
func (c *Controller) Start(ctx context.Context) (*model.ReviewCard, error) {
	if c.state != StateIdle {
		return nil, fmt.Errorf("session already started: %w", model.ErrConflict)
	}
	c.state = StateLoading
	c.startedAt = c.clock()

	ref := c.cfg.ReferenceTime
	if ref.IsZero() {
		ref = c.startedAt
	}

	cards, err := c.store.FindByLearner(ctx, c.cfg.LearnerID)
	if err != nil {
		c.state = StateIdle // 取得失敗時はやり直せるようにIdleへ戻す
		return nil, fmt.Errorf("loading review snapshot: %w", err)
	}

	// Cap をセレクタのlimitとして渡し、セッション長をここで確定させる
	c.queue = srs.SelectDue(cards, ref, c.cfg.Cap)
	if len(c.queue) == 0 {
		c.complete()
		return nil, nil
	}

	c.state = StatePresenting
	current := c.queue[0]
	return &current, nil
}

// Current は提示中のカードを返します。提示中でなければ nil です。
func (c *Controller) Current() *model.ReviewCard {
	if c.state != StatePresenting {
		return nil
	}
	current := c.queue[0]
	return &current
}

// SubmitGrade は提示中のカードにグレードを適用します。スケジューリングエンジンで
// 次の状態を計算し、ストアへ書き込んでからキューを進めます。
//
// 書き込みに失敗した場合は ErrPersistenceFailed を返し、キューは進めません。
// 再試行すると同じカードにもう一度グレードを付けられます（未保存のまま先へ
// 進んでしまうと、そのカードのスケジュール更新が失われるため）。
// 次のカードを返し、キューが尽きたら nil を返して Completed になります。
func (c *Controller) SubmitGrade(ctx context.Context, quality model.Quality) (*model.ReviewCard, error) {
	switch c.state {
	case StateCompleted:
		return nil, model.ErrSessionCompleted
	case StatePresenting:
		// ok
	default:
		return nil, fmt.Errorf("no card presented (state=%s): %w", c.state, model.ErrInvalidInput)
	}

	c.state = StateGrading
	updated, err := srs.Update(c.queue[0], quality, c.clock())
	if err != nil {
		c.state = StatePresenting
		return nil, err
	}

	if err := c.store.Upsert(ctx, &updated); err != nil {
		c.state = StatePresenting
		return nil, fmt.Errorf("%w: %v", model.ErrPersistenceFailed, err)
	}

	c.state = StateAdvancing
	c.reviewed++
	if quality == model.QualityAgain {
		c.lapsed++
	}
	c.queue = c.queue[1:]

	if len(c.queue) == 0 {
		c.complete()
		return nil, nil
	}
	c.state = StatePresenting
	next := c.queue[0]
	return &next, nil
}

func (c *Controller) complete() {
	c.state = StateCompleted
	c.completedAt = c.clock()
}

// State は現在の状態を返します。
func (c *Controller) State() State {
	return c.state
}

// Remaining は未提示のカード枚数（提示中を含む）を返します。
func (c *Controller) Remaining() int {
	return len(c.queue)
}

// Summary はこれまでの集計を返します。Completed 以降は値が変化しません。
func (c *Controller) Summary() Summary {
	var dur time.Duration
	switch {
	case !c.completedAt.IsZero():
		dur = c.completedAt.Sub(c.startedAt)
	case !c.startedAt.IsZero():
		dur = c.clock().Sub(c.startedAt)
	}
	return Summary{
		Reviewed: c.reviewed,
		Lapsed:   c.lapsed,
		Duration: dur,
	}
}
