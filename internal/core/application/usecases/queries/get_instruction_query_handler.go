package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/documents"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// UnspecifiedLabel is printed for a missing truck or driver.
const UnspecifiedLabel = "未指定"

// InstructionView is the read model of the instruction sheet print view.
type InstructionView struct {
	Available   bool              `json:"available"`
	Message     string            `json:"message,omitempty"`
	Hint        string            `json:"hint,omitempty"`
	GeneratedAt string            `json:"generatedAt,omitempty"`
	Instruction *InstructionSheet `json:"instruction,omitempty"`
}

// InstructionSheet is one route's sheet. PaddingRows blank lines follow the
// orders on the printed form.
type InstructionSheet struct {
	RouteID       string               `json:"routeId"`
	RouteName     string               `json:"routeName"`
	TruckInfo     string               `json:"truckInfo"`
	DriverName    string               `json:"driverName"`
	DayID         string               `json:"dayId"`
	DateLabel     string               `json:"dateLabel"`
	FormattedDate string               `json:"formattedDate"`
	OrderCount    int                  `json:"orderCount"`
	TotalWeight   float64              `json:"totalWeight"`
	MaxCapacity   float64              `json:"maxCapacity"`
	LoadRatio     *int                 `json:"loadRatio"`
	Rows          []InstructionRowView `json:"rows"`
	PaddingRows   int                  `json:"paddingRows"`
}

// InstructionRowView is one numbered order line.
type InstructionRowView struct {
	No           int     `json:"no"`
	OrderID      string  `json:"orderId"`
	DeliveryTime string  `json:"deliveryTime,omitempty"`
	CustomerName string  `json:"customerName"`
	Destination  string  `json:"destination,omitempty"`
	ProductName  string  `json:"productName,omitempty"`
	SpecialNote  string  `json:"specialNote,omitempty"`
	Quantity     int     `json:"quantity"`
	Weight       float64 `json:"weight"`
}

// GetInstructionQueryHandler reads documents.InstructionDataKey. A missing
// slot, a malformed payload or a sheet published for another route all produce
// the "no data" view.
type GetInstructionQueryHandler struct {
	handoff   HandoffReader
	projector services.InstructionProjector
	formRows  int
	logger    *slog.Logger
}

func NewGetInstructionQueryHandler(handoff HandoffReader, logger *slog.Logger) GetInstructionQueryHandler {
	return GetInstructionQueryHandler{
		handoff:   handoff,
		projector: services.NewInstructionProjector(),
		formRows:  services.DefaultInstructionFormRows,
		logger:    logger.With("component", "instruction_query"),
	}
}

func (h GetInstructionQueryHandler) Handle(ctx context.Context, query GetInstructionQuery) (InstructionView, error) {
	if err := query.Validate(); err != nil {
		return InstructionView{}, err
	}

	raw, err := h.handoff.Get(ctx, documents.InstructionDataKey)
	if errors.Is(err, ports.ErrHandoffSlotEmpty) {
		return noInstructionData(), nil
	}
	if err != nil {
		return InstructionView{}, fmt.Errorf("read instruction hand-off: %w", err)
	}

	published, err := documents.DecodeInstruction(raw)
	if err != nil {
		h.logger.WarnContext(ctx, "Ignoring unreadable instruction hand-off", "error", err)
		return noInstructionData(), nil
	}

	if published.Route.ID() != query.RouteID() {
		h.logger.DebugContext(ctx, "Instruction hand-off belongs to another route",
			"requested", query.RouteID(),
			"published", published.Route.ID(),
		)
		return noInstructionData(), nil
	}

	sheet, err := h.projector.Project(published.Route)
	if err != nil {
		h.logger.WarnContext(ctx, "Ignoring unprojectable instruction hand-off", "error", err)
		return noInstructionData(), nil
	}

	rows := make([]InstructionRowView, len(sheet.Rows))
	for i, row := range sheet.Rows {
		rows[i] = InstructionRowView{
			No:           row.No,
			OrderID:      row.Order.ID(),
			DeliveryTime: row.Order.DeliveryTime(),
			CustomerName: row.Order.CustomerName(),
			Destination:  row.Order.Destination(),
			ProductName:  row.Order.ProductName(),
			SpecialNote:  row.Order.SpecialNote(),
			Quantity:     row.Quantity,
			Weight:       row.Order.Weight(),
		}
	}

	var ratio *int
	if sheet.HasLoadRatio {
		ratio = &sheet.LoadRatio
	}

	return InstructionView{
		Available:   true,
		GeneratedAt: documents.FormatTimestamp(published.GeneratedAt),
		Instruction: &InstructionSheet{
			RouteID:       sheet.RouteID,
			RouteName:     sheet.RouteName,
			TruckInfo:     orUnspecified(sheet.TruckInfo),
			DriverName:    orUnspecified(sheet.DriverName),
			DayID:         published.DayID,
			DateLabel:     published.DateLabel,
			FormattedDate: kernel.ParseDateLabel(published.DateLabel).InstructionFormat(),
			OrderCount:    sheet.OrderCount,
			TotalWeight:   sheet.TotalWeight,
			MaxCapacity:   sheet.MaxCapacity,
			LoadRatio:     ratio,
			Rows:          rows,
			PaddingRows:   sheet.PaddingRows(h.formRows),
		},
	}, nil
}

func noInstructionData() InstructionView {
	return InstructionView{
		Message: NoInstructionDataMessage,
		Hint:    NoInstructionDataHint,
	}
}

func orUnspecified(s string) string {
	if s == "" {
		return UnspecifiedLabel
	}
	return s
}
