// internal/shell/shell.go

// Package shell is the interactive menu surface over the reservation
// engine. It reads choices, calls into the core, and renders the typed
// results through the locale catalog. All business decisions stay in the
// gym package.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/locale"
)

// Shell drives one facility through a request/response cycle per menu
// choice. One instance serves one terminal session.
type Shell struct {
	gym *gym.Gym
	loc locale.Locale
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

func New(g *gym.Gym, in io.Reader, out io.Writer, log zerolog.Logger) *Shell {
	return &Shell{
		gym: g,
		loc: locale.Default(),
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run loops until the user quits, input ends, or ctx is cancelled. The
// active session, if any, is logged off on the way out.
func (s *Shell) Run(ctx context.Context) error {
	defer func() {
		if err := s.gym.LogOff(); err != nil {
			s.log.Error().Err(err).Msg("final save failed")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.printMenu()
		line, ok := s.readLine("")
		if !ok {
			return nil
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = -1
		}
		done, err := s.dispatch(choice)
		if err != nil {
			return err
		}
		if done {
			fmt.Fprintln(s.out, s.loc.T("menu_ending"))
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintf(s.out, "\n=== %s ===\n", s.gym.Name())
	t := s.loc.T
	if s.gym.ActiveMember() == nil {
		fmt.Fprintln(s.out, t("menu_register"))
		fmt.Fprintln(s.out, t("menu_login"))
		fmt.Fprintln(s.out, t("menu_language"))
	} else {
		fmt.Fprintln(s.out, t("menu_book"))
		fmt.Fprintln(s.out, t("menu_topup"))
		fmt.Fprintln(s.out, t("menu_balance"))
		fmt.Fprintln(s.out, t("menu_reservations"))
		fmt.Fprintln(s.out, t("menu_add_record"))
		fmt.Fprintln(s.out, t("menu_show_records"))
		fmt.Fprintln(s.out, t("menu_export_records"))
		fmt.Fprintln(s.out, t("menu_language_in"))
		fmt.Fprintln(s.out, t("menu_cancel"))
		fmt.Fprintln(s.out, t("menu_help"))
		fmt.Fprintln(s.out, t("menu_logoff"))
	}
	fmt.Fprintln(s.out, t("menu_terminate"))
}

// dispatch runs one menu choice. It reports done=true on quit, and a
// non-nil error only for unrecoverable faults.
func (s *Shell) dispatch(choice int) (bool, error) {
	if s.gym.ActiveMember() == nil {
		switch choice {
		case 0:
			return true, nil
		case 1:
			return false, s.register()
		case 2:
			return false, s.logIn()
		case 3:
			s.switchLanguage()
		default:
			fmt.Fprintln(s.out, s.loc.T("menu_bad_choice"))
		}
		return false, nil
	}

	switch choice {
	case 0:
		return true, nil
	case 1:
		return false, s.book()
	case 2:
		return false, s.topUp()
	case 3:
		s.showBalance()
	case 4:
		s.showReservations()
	case 5:
		return false, s.addRecord()
	case 6:
		return false, s.showRecords()
	case 7:
		return false, s.exportRecords()
	case 8:
		s.switchLanguage()
	case 9:
		return false, s.cancel()
	case 10:
		fmt.Fprintln(s.out, s.loc.T("msg_help"))
	case 11:
		return false, s.logOff()
	default:
		fmt.Fprintln(s.out, s.loc.T("menu_bad_choice"))
	}
	return false, nil
}

func (s *Shell) country() gym.Country {
	if s.loc.Country == "CZ" {
		return gym.CountryCZ
	}
	return gym.CountryUS
}

func (s *Shell) register() error {
	first, ok := s.readLine(s.loc.T("prompt_first_name"))
	if !ok {
		return nil
	}
	last, ok := s.readLine(s.loc.T("prompt_last_name"))
	if !ok {
		return nil
	}
	genderRaw, ok := s.readLine(s.loc.T("prompt_gender"))
	if !ok {
		return nil
	}
	gender, err := gym.ParseGender(genderRaw)
	if err != nil {
		s.badInput(genderRaw)
		return nil
	}
	password, ok := s.readLine(s.loc.T("prompt_password"))
	if !ok {
		return nil
	}

	if _, err := s.gym.Register(first, last, gender, password); err != nil {
		return s.renderError(err)
	}
	fmt.Fprintln(s.out, s.loc.T("msg_registered"))
	return nil
}

func (s *Shell) logIn() error {
	name, ok := s.readLine(s.loc.T("prompt_login_name"))
	if !ok {
		return nil
	}
	password, ok := s.readLine(s.loc.T("prompt_password"))
	if !ok {
		return nil
	}
	if _, err := s.gym.Authenticate(name, password); err != nil {
		return s.renderError(err)
	}
	fmt.Fprintln(s.out, s.loc.T("msg_logged_in"))
	return nil
}

func (s *Shell) book() error {
	fee, err := s.gym.ComputeFee(s.country())
	if err != nil {
		return s.renderError(err)
	}
	fmt.Fprintf(s.out, "%s%s\n", s.loc.T("prompt_price"), fee)

	date, ok := s.readDate()
	if !ok {
		return nil
	}
	result, err := s.gym.Book(s.country(), date)
	if err != nil {
		return s.renderError(err)
	}
	fmt.Fprintf(s.out, "%s (%d/%d)\n", s.loc.T("msg_booked"), result.Occupancy, result.Capacity)
	return nil
}

func (s *Shell) cancel() error {
	date, ok := s.readDate()
	if !ok {
		return nil
	}
	cancelled, err := s.gym.Cancel(date)
	if err != nil {
		return s.renderError(err)
	}
	if cancelled {
		fmt.Fprintln(s.out, s.loc.T("msg_cancelled"))
	} else {
		fmt.Fprintln(s.out, s.loc.T("msg_nothing_cancel"))
	}
	return nil
}

func (s *Shell) topUp() error {
	amount, ok := s.readInt(s.loc.T("prompt_amount"))
	if !ok {
		return nil
	}
	if err := s.gym.TopUp(decimal.NewFromInt(int64(amount))); err != nil {
		return s.renderError(err)
	}
	fmt.Fprintln(s.out, s.loc.T("msg_topup_done"))
	return nil
}

func (s *Shell) showBalance() {
	m := s.gym.ActiveMember()
	fmt.Fprintf(s.out, "%s%s\n", s.loc.T("msg_balance"), m.Balance.StringFixed(2))
}

func (s *Shell) showReservations() {
	m := s.gym.ActiveMember()
	dates := make([]string, len(m.Reservations))
	for i, r := range m.Reservations {
		dates[i] = r.Date.String()
	}
	fmt.Fprintf(s.out, "%s%s\n", s.loc.T("msg_reservations"), strings.Join(dates, ", "))
}

func (s *Shell) addRecord() error {
	exercise, ok := s.readLine(s.loc.T("prompt_exercise"))
	if !ok {
		return nil
	}
	weight, ok := s.readInt(s.loc.T("prompt_weight"))
	if !ok {
		return nil
	}
	if err := s.gym.AddExerciseRecord(exercise, weight); err != nil {
		return s.renderError(err)
	}
	fmt.Fprintln(s.out, s.loc.T("msg_record_added"))
	return nil
}

func (s *Shell) showRecords() error {
	choice, ok := s.readInt(s.loc.T("prompt_sort"))
	if !ok {
		return nil
	}
	order := gym.SortAscending
	if choice == 1 {
		order = gym.SortDescending
	}
	if err := s.gym.SortRecords(order); err != nil {
		return s.renderError(err)
	}
	fmt.Fprint(s.out, s.gym.ActiveMember().RecordsText())
	return nil
}

func (s *Shell) exportRecords() error {
	key, err := s.gym.ExportRecords()
	if err != nil {
		return s.renderError(err)
	}
	fmt.Fprintf(s.out, "%s%s\n", s.loc.T("msg_record_export"), key)
	return nil
}

func (s *Shell) switchLanguage() {
	s.loc = s.loc.Toggle()
	if s.gym.ActiveMember() != nil {
		// One conversion per toggle, or the amount drifts.
		if err := s.gym.ConvertBalance(s.country()); err != nil {
			s.log.Error().Err(err).Msg("balance conversion failed")
		}
	}
}

func (s *Shell) logOff() error {
	if err := s.gym.LogOff(); err != nil {
		return s.renderError(err)
	}
	fmt.Fprintln(s.out, s.loc.T("msg_logged_out"))
	return nil
}

// renderError maps business failures to catalog messages and keeps the
// loop running; faults are logged, and only the digest fault (an
// unrecoverable environment problem) stops the process.
func (s *Shell) renderError(err error) error {
	t := s.loc.T
	switch {
	case errors.Is(err, gym.ErrInsufficientFunds):
		fmt.Fprintln(s.out, t("msg_no_funds"))
	case errors.Is(err, gym.ErrAlreadyReserved):
		fmt.Fprintln(s.out, t("msg_already"))
	case errors.Is(err, gym.ErrCapacityExceeded):
		fmt.Fprintln(s.out, t("msg_full"))
	case errors.Is(err, gym.ErrNotFound):
		fmt.Fprintln(s.out, t("msg_user_not_found"))
	case errors.Is(err, gym.ErrBadCredentials):
		fmt.Fprintln(s.out, t("msg_wrong_password"))
	case errors.Is(err, gym.ErrDuplicateMember):
		fmt.Fprintln(s.out, t("msg_duplicate"))
	case errors.Is(err, gym.ErrInvalidInput), errors.Is(err, gym.ErrNoSession):
		s.badInput(err.Error())
	default:
		var fault *gym.Fault
		if errors.As(err, &fault) {
			s.log.Error().Int("code", fault.Code).Err(err).Msg("operation failed")
			if fault.Code == gym.CodeDigest {
				return err
			}
			return nil
		}
		s.log.Error().Err(err).Msg("operation failed")
	}
	return nil
}

// badInput reports a rejected value to the user and logs it under the
// stable bad-input code so operators can count them.
func (s *Shell) badInput(value string) {
	s.log.Warn().Int("code", gym.CodeBadInput).Str("input", value).Msg("rejected input")
	fmt.Fprintln(s.out, s.loc.T("msg_bad_input"))
}

func (s *Shell) readLine(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// readInt keeps the loop alive on unparseable input by reporting bad
// input and returning ok=false.
func (s *Shell) readInt(prompt string) (int, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.badInput(line)
		return 0, false
	}
	return n, true
}

func (s *Shell) readDate() (gym.Date, bool) {
	day, ok := s.readInt(s.loc.T("prompt_day"))
	if !ok {
		return "", false
	}
	month, ok := s.readInt(s.loc.T("prompt_month"))
	if !ok {
		return "", false
	}
	year, ok := s.readInt(s.loc.T("prompt_year"))
	if !ok {
		return "", false
	}
	date, err := gym.NewDate(year, month, day)
	if err != nil {
		s.badInput(fmt.Sprintf("%d-%d-%d", year, month, day))
		return "", false
	}
	return date, true
}
