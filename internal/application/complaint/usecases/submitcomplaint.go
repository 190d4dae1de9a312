package usecases

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"civicdesk/internal/application/complaint/dto"
	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/domain/user"
	"civicdesk/internal/infrastructure/ml"
	"civicdesk/internal/shared/constants"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/id"
	"civicdesk/internal/shared/logger"
)

type SubmitComplaintCommand struct {
	Category    string
	Description string
	Location    string
	PhotoPath   string
	AreaWeight  *float64
	ReporterID  uint
}

type SubmitComplaintResult struct {
	ComplaintID   uint
	Reference     string
	Category      string
	Status        string
	PriorityScore int
	Severity      string
	Reasoning     string
	CreatedAt     time.Time
}

// DuplicateComplaintError rejects a submission that restates a recent
// complaint. Similarity is a percentage in [0, 100].
type DuplicateComplaintError struct {
	Similarity int
	Matching   *dto.ComplaintSummaryDTO
}

func (e *DuplicateComplaintError) Error() string {
	return fmt.Sprintf("duplicate complaint: %d%% similar to %s", e.Similarity, e.Matching.Reference)
}

type SubmitComplaintUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	classifier    ml.Classifier
	embedder      ml.Embedder
	notifier      NotificationService
	scorer        *complaint.Scorer
	detector      *complaint.DuplicateDetector
	sanitizer     *bluemonday.Policy
	minConfidence float64
	logger        logger.Interface
}

func NewSubmitComplaintUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	classifier ml.Classifier,
	embedder ml.Embedder,
	notifier NotificationService,
	minConfidence float64,
	logger logger.Interface,
) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		classifier:    classifier,
		embedder:      embedder,
		notifier:      notifier,
		scorer:        complaint.NewScorer(),
		detector:      complaint.NewDuplicateDetector(),
		sanitizer:     bluemonday.StrictPolicy(),
		minConfidence: minConfidence,
		logger:        logger,
	}
}

func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error) {
	uc.logger.Infow("executing submit complaint use case",
		"reporter_id", cmd.ReporterID, "category", cmd.Category)

	description := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Description))
	location := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Location))

	if err := uc.validateCommand(cmd, description, location); err != nil {
		uc.logger.Errorw("invalid submit complaint command", "error", err)
		return nil, err
	}

	category, err := uc.resolveCategory(ctx, cmd.Category, description)
	if err != nil {
		return nil, err
	}

	embedding, err := uc.embedder.Embed(ctx, description)
	if err != nil {
		uc.logger.Warnw("embedding unavailable, skipping duplicate check", "error", err)
		embedding = nil
	}

	if embedding != nil {
		if dupErr := uc.rejectIfDuplicate(ctx, embedding); dupErr != nil {
			return nil, dupErr
		}
	}

	newComplaint, err := complaint.NewComplaint(description, location, category, cmd.ReporterID)
	if err != nil {
		uc.logger.Errorw("failed to create complaint entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	reference, err := id.GenerateWithPrefix(id.PrefixComplaint, id.DefaultLength)
	if err != nil {
		uc.logger.Errorw("failed to generate complaint reference", "error", err)
		return nil, errors.NewInternalError("failed to generate complaint reference")
	}
	if err := newComplaint.SetReference(reference); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	newComplaint.SetEmbedding(embedding)
	if cmd.PhotoPath != "" {
		newComplaint.SetPhotoPath(cmd.PhotoPath)
	}

	sameLocation, err := uc.complaintRepo.CountSameLocation(ctx, location, 0)
	if err != nil {
		uc.logger.Warnw("failed to count same-location complaints", "error", err)
		sameLocation = -1
	}

	assessment := uc.score(category, location, sameLocation, cmd.AreaWeight)
	if assessment.Degraded {
		uc.logger.Warnw("priority scoring degraded to neutral defaults",
			"reporter_id", cmd.ReporterID, "location", location)
	}

	if err := newComplaint.AttachPriority(&assessment); err != nil {
		uc.logger.Errorw("failed to attach priority assessment", "error", err)
		return nil, errors.NewInternalError("failed to attach priority assessment")
	}

	if err := uc.complaintRepo.Save(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, errors.NewInternalError("failed to save complaint")
	}

	uc.logger.Infow("complaint submitted successfully",
		"complaint_id", newComplaint.ID(),
		"reference", newComplaint.Reference(),
		"category", newComplaint.Category().String(),
		"priority_score", newComplaint.PriorityScore(),
		"severity", newComplaint.Severity().String())

	uc.notifyReporter(ctx, newComplaint)

	return &SubmitComplaintResult{
		ComplaintID:   newComplaint.ID(),
		Reference:     newComplaint.Reference(),
		Category:      newComplaint.Category().String(),
		Status:        newComplaint.Status().String(),
		PriorityScore: newComplaint.PriorityScore(),
		Severity:      newComplaint.Severity().String(),
		Reasoning:     newComplaint.Reasoning(),
		CreatedAt:     newComplaint.CreatedAt(),
	}, nil
}

// notifyReporter sends the submission receipt email. Delivery failures
// never fail the submission.
func (uc *SubmitComplaintUseCase) notifyReporter(ctx context.Context, c *complaint.Complaint) {
	if uc.notifier == nil {
		return
	}

	reporter, err := uc.userRepo.FindByID(ctx, c.ReporterID())
	if err != nil {
		uc.logger.Warnw("failed to load reporter for receipt email",
			"reporter_id", c.ReporterID(), "error", err)
		return
	}

	if err := uc.notifier.SendComplaintReceivedEmail(reporter.Email().String(), c.Reference()); err != nil {
		uc.logger.Warnw("failed to send complaint received email",
			"reference", c.Reference(), "error", err)
	}
}

func (uc *SubmitComplaintUseCase) validateCommand(cmd SubmitComplaintCommand, description, location string) error {
	if len(description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if len(location) == 0 {
		return errors.NewValidationError("location is required")
	}

	if len(location) > 300 {
		return errors.NewValidationError("location exceeds maximum length of 300 characters")
	}

	if cmd.ReporterID == 0 {
		return errors.NewValidationError("reporter ID is required")
	}

	if cmd.Category != "" {
		if _, err := vo.NewCategory(cmd.Category); err != nil {
			return errors.NewValidationError("invalid category")
		}
	}

	return nil
}

// resolveCategory uses the reporter's choice when present, otherwise asks
// the classifier. Low-confidence predictions fall back to "other".
func (uc *SubmitComplaintUseCase) resolveCategory(ctx context.Context, chosen, description string) (vo.Category, error) {
	if chosen != "" {
		return vo.NewCategory(chosen)
	}

	prediction, err := uc.classifier.Classify(ctx, description)
	if err != nil || prediction == nil {
		uc.logger.Warnw("classification unavailable, defaulting category", "error", err)
		return vo.CategoryOther, nil
	}

	if prediction.Confidence < uc.minConfidence {
		uc.logger.Debugw("classifier confidence below threshold",
			"predicted", prediction.Category, "confidence", prediction.Confidence)
		return vo.CategoryOther, nil
	}

	category, err := vo.NewCategory(prediction.Category)
	if err != nil {
		uc.logger.Warnw("classifier returned unknown category", "predicted", prediction.Category)
		return vo.CategoryOther, nil
	}

	return category, nil
}

func (uc *SubmitComplaintUseCase) rejectIfDuplicate(ctx context.Context, embedding []float32) error {
	since := time.Now().AddDate(0, 0, -constants.RecentWindowDays)
	window, err := uc.complaintRepo.RecentWindow(ctx, since, constants.RecentWindowSize)
	if err != nil {
		uc.logger.Warnw("failed to load recent complaints, skipping duplicate check", "error", err)
		return nil
	}

	check := uc.detector.Detect(embedding, window)
	if !check.IsDuplicate {
		return nil
	}

	matching, err := uc.complaintRepo.FindByID(ctx, *check.MatchingComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load matching complaint",
			"complaint_id", *check.MatchingComplaintID, "error", err)
		return errors.NewInternalError("failed to load matching complaint")
	}

	uc.logger.Infow("duplicate complaint rejected",
		"matching_id", matching.ID(), "similarity", check.Similarity)

	return &DuplicateComplaintError{
		Similarity: int(math.Round(check.Similarity * 100)),
		Matching:   dto.ToComplaintSummaryDTO(matching),
	}
}

func (uc *SubmitComplaintUseCase) score(
	category vo.Category,
	location string,
	sameLocation int64,
	areaWeight *float64,
) complaint.Assessment {
	input := complaint.ScoreInput{
		Category:   category,
		Location:   location,
		AreaWeight: clampAreaWeight(areaWeight),
	}

	if sameLocation >= 0 {
		count := int(sameLocation)
		input.SameLocationCount = &count
	}

	// A brand new complaint has no pending time yet.
	hours := 0.0
	input.HoursPending = &hours

	return uc.scorer.Calculate(input)
}

// clampAreaWeight bounds a caller-supplied area weight to [0, 100]. The
// scorer records the weight verbatim in the breakdown, so the bound has
// to hold before it reaches the scorer.
func clampAreaWeight(w *float64) *float64 {
	if w == nil {
		return nil
	}
	clamped := math.Min(100, math.Max(0, *w))
	return &clamped
}
