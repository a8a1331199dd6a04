package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"regexp"
	"strings"

	"github.com/etnz/bourso"
)

// Transfer errors, one per wizard stage, so a caller knows how far the
// wizard got before failing.
var (
	ErrAmountTooLow             = errors.New("amount is below the minimum threshold (10 EUR)")
	ErrReasonTooLong            = errors.New("transfer reason is too long, max 50 characters")
	ErrTransferInitiationFailed = errors.New("transfer initiation failed")
	ErrSetDebitAccountFailed    = errors.New("setting debit account failed")
	ErrSetCreditAccountFailed   = errors.New("setting credit account failed")
	ErrSetAmountFailed          = errors.New("setting transfer amount failed")
	ErrIntermediateStepFailed   = errors.New("transfer intermediate step failed")
	ErrSetReasonFailed          = errors.New("setting transfer reason failed")
	ErrSubmitTransferFailed     = errors.New("submitting transfer failed")
	ErrInvalidTransfer          = errors.New("invalid transfer: check that the accounts exist, that the balance is sufficient and that the portal allows transfers between these accounts")
)

// DefaultTransferReason labels transfers submitted without a reason.
const DefaultTransferReason bourso.TransferReason = "Virement depuis BoursoBank"

// TransferProgress names the wizard stage about to run.
type TransferProgress int

const (
	Validating TransferProgress = iota
	Initiating
	ExtractingFlowInstance
	SettingDebitAccount
	SettingCreditAccount
	SettingAmount
	ConfirmingAmount
	SettingReason
	SubmittingTransfer
	Completed
)

func (p TransferProgress) String() string {
	switch p {
	case Validating:
		return "validating"
	case Initiating:
		return "initiating"
	case ExtractingFlowInstance:
		return "extracting flow instance"
	case SettingDebitAccount:
		return "setting debit account"
	case SettingCreditAccount:
		return "setting credit account"
	case SettingAmount:
		return "setting amount"
	case ConfirmingAmount:
		return "confirming amount"
	case SettingReason:
		return "setting reason"
	case SubmittingTransfer:
		return "submitting transfer"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Description returns a short operator-facing label.
func (p TransferProgress) Description() string {
	switch p {
	case Validating:
		return "Validating transfer parameters"
	case Initiating:
		return "Opening the transfer wizard"
	case ExtractingFlowInstance:
		return "Reading the wizard session"
	case SettingDebitAccount:
		return "Selecting the debit account"
	case SettingCreditAccount:
		return "Selecting the credit account"
	case SettingAmount:
		return "Entering the amount"
	case ConfirmingAmount:
		return "Confirming the amount"
	case SettingReason:
		return "Labelling the transfer"
	case SubmittingTransfer:
		return "Submitting the transfer"
	case Completed:
		return "Transfer confirmed"
	}
	return "Unknown step"
}

// StepNumber returns the 1-based position of the stage, for progress bars.
func (p TransferProgress) StepNumber() int { return int(p) + 1 }

// Steps is the total number of wizard stages.
const Steps = int(Completed) + 1

var flowInstancePattern = regexp.MustCompile(`name="flow_ImmediateCashTransfer_instance" value="([^"]+)"`)

// TransferFunds drives the portal's immediate transfer wizard. It returns
// a lazy sequence that yields each stage right before running it; the
// wizard only advances as the caller pulls. On failure the stage is
// yielded again with its error and the sequence stops. A sequence that
// reached Completed with a nil error is a confirmed transfer.
//
// Amounts below 10 EUR are rejected before any network traffic, as the
// portal silently swallows them.
func (c *Client) TransferFunds(ctx context.Context, amount bourso.Amount, from, to bourso.Account, reason bourso.TransferReason) iter.Seq2[TransferProgress, error] {
	return func(yield func(TransferProgress, error) bool) {
		fail := func(p TransferProgress, err error) { yield(p, err) }

		if !yield(Validating, nil) {
			return
		}
		if err := c.requireAuth(); err != nil {
			fail(Validating, err)
			return
		}
		if amount.LessThan(10) {
			fail(Validating, ErrAmountTooLow)
			return
		}
		if len(reason) > 50 {
			fail(Validating, ErrReasonTooLong)
			return
		}
		if reason == "" {
			reason = DefaultTransferReason
		}

		if !yield(Initiating, nil) {
			return
		}
		base := fmt.Sprintf("%s/compte/cav/%s/virements/immediat/nouveau", c.base, from.ID)
		resp, err := c.getResponse(ctx, base)
		if err != nil {
			fail(Initiating, err)
			return
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusFound {
			fail(Initiating, fmt.Errorf("%w: status %d", ErrTransferInitiationFailed, resp.StatusCode))
			return
		}
		location := resp.Header.Get("Location")
		// The wizard id sits at a fixed depth of the redirect path:
		// /compte/cav/{account}/virements/immediat/nouveau/{id}/1
		parts := strings.Split(location, "/")
		if len(parts) < 8 {
			fail(Initiating, fmt.Errorf("%w: unexpected redirect %q", ErrTransferInitiationFailed, location))
			return
		}
		transferID := parts[7]

		if !yield(ExtractingFlowInstance, nil) {
			return
		}
		status, body, err := c.get(ctx, c.base+location, nil)
		if err != nil {
			fail(ExtractingFlowInstance, err)
			return
		}
		if status != http.StatusOK {
			fail(ExtractingFlowInstance, fmt.Errorf("%w: status %d", ErrTransferInitiationFailed, status))
			return
		}
		m := flowInstancePattern.FindStringSubmatch(body)
		if m == nil {
			fail(ExtractingFlowInstance, fmt.Errorf("%w: %v", ErrTransferInitiationFailed,
				&PortalChangedError{Marker: "flow_ImmediateCashTransfer_instance"}))
			return
		}
		flow := m[1]

		// Helper posting one wizard step form to /{transferID}/{page}.
		step := func(page string, fields []formField) error {
			payload, contentType, err := multipartForm(fields)
			if err != nil {
				return err
			}
			url := fmt.Sprintf("%s/%s/%s", base, transferID, page)
			resp, err := c.post(ctx, url, contentType, payload, nil)
			if err != nil {
				return err
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status %d", resp.StatusCode)
			}
			return nil
		}

		if !yield(SettingDebitAccount, nil) {
			return
		}
		if err := step("2", []formField{
			{"flow_ImmediateCashTransfer_instance", flow},
			{"flow_ImmediateCashTransfer_step", "1"},
			{"DebitAccount[debit]", string(from.ID)},
		}); err != nil {
			fail(SettingDebitAccount, fmt.Errorf("%w: %v", ErrSetDebitAccountFailed, err))
			return
		}

		if !yield(SettingCreditAccount, nil) {
			return
		}
		fields := []formField{}
		if from.Kind == bourso.Banking {
			// Checking accounts show a beneficiary picker first.
			fields = append(fields, formField{"CreditAccount[newBeneficiary]", "0"})
		}
		fields = append(fields,
			formField{"flow_ImmediateCashTransfer_instance", flow},
			formField{"flow_ImmediateCashTransfer_step", "2"},
			formField{"CreditAccount[credit]", string(to.ID)},
		)
		if err := step("3", fields); err != nil {
			fail(SettingCreditAccount, fmt.Errorf("%w: %v", ErrSetCreditAccountFailed, err))
			return
		}

		if !yield(SettingAmount, nil) {
			return
		}
		if err := step("6", []formField{
			{"flow_ImmediateCashTransfer_instance", flow},
			{"flow_ImmediateCashTransfer_step", "5"},
			{"Amount[amount]", strings.ReplaceAll(amount.String(), ".", ",")},
			{"flow_ImmediateCashTransfer_transition", ""},
			{"submit", ""},
		}); err != nil {
			fail(SettingAmount, fmt.Errorf("%w: %v", ErrSetAmountFailed, err))
			return
		}

		if !yield(ConfirmingAmount, nil) {
			return
		}
		if err := step("7", []formField{
			{"flow_ImmediateCashTransfer_transition", ""},
			{"flow_ImmediateCashTransfer_instance", flow},
			{"flow_ImmediateCashTransfer_step", "6"},
			{"submit", ""},
		}); err != nil {
			fail(ConfirmingAmount, fmt.Errorf("%w: %v", ErrIntermediateStepFailed, err))
			return
		}

		if !yield(SettingReason, nil) {
			return
		}
		if err := step("10", []formField{
			{"flow_ImmediateCashTransfer_instance", flow},
			{"flow_ImmediateCashTransfer_step", "9"},
			{"Characteristics[label]", string(reason)},
			// 1 means a one-off transfer, not a standing order.
			{"Characteristics[schedulingType]", "1"},
			{"flow_ImmediateCashTransfer_transition", ""},
			{"flow_ImmediateCashTransfer_transition", ""},
			{"submit", ""},
		}); err != nil {
			fail(SettingReason, fmt.Errorf("%w: %v", ErrSetReasonFailed, err))
			return
		}

		if !yield(SubmittingTransfer, nil) {
			return
		}
		payload, contentType, err := multipartForm([]formField{
			{"flow_ImmediateCashTransfer_instance", flow},
			{"flow_ImmediateCashTransfer_step", "11"},
			{"flow_ImmediateCashTransfer_transition", ""},
			{"flow_ImmediateCashTransfer_transition", ""},
			{"submit", ""},
		})
		if err != nil {
			fail(SubmittingTransfer, err)
			return
		}
		resp, err = c.post(ctx, fmt.Sprintf("%s/%s/12", base, transferID), contentType, payload, nil)
		if err != nil {
			fail(SubmittingTransfer, fmt.Errorf("%w: %v", ErrSubmitTransferFailed, err))
			return
		}
		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			fail(SubmittingTransfer, err)
			return
		}
		if resp.StatusCode != http.StatusOK {
			fail(SubmittingTransfer, fmt.Errorf("%w: status %d", ErrSubmitTransferFailed, resp.StatusCode))
			return
		}
		if !strings.Contains(string(b), "Confirmation") {
			fail(SubmittingTransfer, ErrInvalidTransfer)
			return
		}

		yield(Completed, nil)
	}
}

// getResponse is get without body consumption, for redirect inspection.
func (c *Client) getResponse(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return c.http.Do(req)
}
