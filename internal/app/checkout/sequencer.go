package checkout

import (
	"time"

	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/domain"
	"github.com/YelzhanWeb/aquave/internal/interfaces"
)

// DefaultAutoClose is how long the confirmation stays on screen
const DefaultAutoClose = 3 * time.Second

type Options struct {
	// Drink defaults to domain.DefaultOrderDrink
	Drink     *domain.OrderDrink
	AutoClose time.Duration
	Scheduler scheduler.Scheduler
	Listener  interfaces.Listener
	// Intn draws the confirmation number; nil uses math/rand
	Intn func(int) int
}

// Sequencer drives the ordering panel and its checkout dialog.
// It is not safe for concurrent use; the owning session serialises calls
// and must hand in a scheduler whose callbacks run under the same lock.
type Sequencer struct {
	wizard       domain.Wizard
	drink        domain.OrderDrink
	spiritID     string
	delivery     domain.DeliveryOption
	dialogOpen   bool
	completed    bool
	confirmation *domain.Confirmation

	autoClose time.Duration
	closeTask scheduler.Task
	sched     scheduler.Scheduler
	listener  interfaces.Listener
	intn      func(int) int
}

func New(opts Options) *Sequencer {
	drink := domain.DefaultOrderDrink()
	if opts.Drink != nil {
		drink = *opts.Drink
	}
	autoClose := opts.AutoClose
	if autoClose <= 0 {
		autoClose = DefaultAutoClose
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = scheduler.New()
	}

	return &Sequencer{
		wizard:     domain.NewWizard(),
		drink:      drink,
		spiritID:   domain.DefaultSpiritID,
		delivery:   domain.DeliveryExpress,
		dialogOpen: true,
		autoClose:  autoClose,
		sched:      sched,
		listener:   interfaces.OrNop(opts.Listener),
		intn:       opts.Intn,
	}
}

// Advance moves the wizard forward. Placing the order schedules the auto-close.
func (s *Sequencer) Advance() domain.WizardTransition {
	tr := s.wizard.Advance()
	if tr != domain.TransitionPlaced {
		return tr
	}

	conf := domain.NewConfirmation(s.intn)
	s.confirmation = &conf
	s.closeTask = s.sched.AfterFunc(s.autoClose, func() {
		s.closeTask = nil
		s.complete(conf)
	})
	return tr
}

func (s *Sequencer) Retreat() bool {
	return s.wizard.Retreat()
}

// Open reopens the dialog. A placed order cannot be reopened.
func (s *Sequencer) Open() error {
	if s.wizard.Placed {
		return domain.ErrOrderPlaced
	}
	s.dialogOpen = true
	return nil
}

// Close hides the dialog. A pending auto-close still completes the order.
func (s *Sequencer) Close() {
	s.dialogOpen = false
}

func (s *Sequencer) SetSpirit(id string) error {
	if s.wizard.Placed {
		return domain.ErrOrderPlaced
	}
	if _, err := domain.FindSpirit(id); err != nil {
		return err
	}
	s.spiritID = id
	return nil
}

func (s *Sequencer) SetDelivery(opt domain.DeliveryOption) error {
	if s.wizard.Placed {
		return domain.ErrOrderPlaced
	}
	if _, err := domain.ParseDeliveryOption(string(opt)); err != nil {
		return err
	}
	s.delivery = opt
	return nil
}

func (s *Sequencer) Quote() domain.Quote {
	spirit, err := domain.FindSpirit(s.spiritID)
	if err != nil {
		spirit, _ = domain.FindSpirit(domain.DefaultSpiritID)
	}
	return domain.NewQuote(s.drink, spirit, s.delivery)
}

// SetDrink rescopes an unplaced order to another drink
func (s *Sequencer) SetDrink(d domain.OrderDrink) error {
	if s.wizard.Placed {
		return domain.ErrOrderPlaced
	}
	s.drink = d
	return nil
}

// Finish completes a placed order now instead of waiting for the auto-close
func (s *Sequencer) Finish() {
	if s.closeTask == nil {
		return
	}
	s.closeTask.Cancel()
	s.closeTask = nil
	s.complete(*s.confirmation)
}

func (s *Sequencer) complete(conf domain.Confirmation) {
	s.dialogOpen = false
	s.completed = true
	s.listener.OrderCompleted(conf, s.Quote())
}

func (s *Sequencer) Placed() bool {
	return s.wizard.Placed
}

// Dispose cancels the pending auto-close, if any
func (s *Sequencer) Dispose() {
	if s.closeTask != nil {
		s.closeTask.Cancel()
		s.closeTask = nil
	}
}

// State is the ordering panel as rendered
type State struct {
	Drink           domain.OrderDrink      `json:"drink"`
	Spirits         []domain.PremiumSpirit `json:"spirits"`
	SpiritID        string                 `json:"spirit_id"`
	Delivery        domain.DeliveryOption  `json:"delivery"`
	DialogOpen      bool                   `json:"dialog_open"`
	Step            domain.CheckoutStep    `json:"step"`
	StepTitle       string                 `json:"step_title"`
	StepDescription string                 `json:"step_description"`
	ActionLabel     string                 `json:"action_label"`
	CanRetreat      bool                   `json:"can_retreat"`
	Placed          bool                   `json:"placed"`
	Completed       bool                   `json:"completed"`
	Quote           domain.Quote           `json:"quote"`
	Confirmation    *domain.Confirmation   `json:"confirmation,omitempty"`
}

func (s *Sequencer) State() State {
	st := State{
		Drink:           s.drink,
		Spirits:         domain.PremiumSpirits(),
		SpiritID:        s.spiritID,
		Delivery:        s.delivery,
		DialogOpen:      s.dialogOpen,
		Step:            s.wizard.Step,
		StepTitle:       s.wizard.Step.Title(),
		StepDescription: s.wizard.Step.Description(),
		ActionLabel:     s.wizard.ActionLabel(),
		CanRetreat:      s.wizard.CanRetreat(),
		Placed:          s.wizard.Placed,
		Completed:       s.completed,
		Quote:           s.Quote(),
	}
	if s.confirmation != nil {
		c := *s.confirmation
		st.Confirmation = &c
	}
	return st
}
