package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// errCancelled is returned by prompts when the user types "c" to abandon
// the current flow and go back to the menu
var errCancelled = errors.New("cli: cancelled by user")

func isCancel(text string) bool {
	return strings.EqualFold(text, "c")
}

// readLine reads one line and returns it trimmed. io.EOF is treated as a
// cancel so a closed stdin cannot spin the menu loop.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		if err == io.EOF {
			return "", errCancelled
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptLine shows the label and returns the raw trimmed answer, which may
// be empty
func (a *App) promptLine(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	return a.readLine()
}

// promptNonEmpty re-asks until the answer is non-empty, honoring "c" as cancel
func (a *App) promptNonEmpty(label string) (string, error) {
	for {
		text, err := a.promptLine(label)
		if err != nil {
			return "", err
		}
		if isCancel(text) {
			return "", errCancelled
		}
		if text != "" {
			return text, nil
		}
		fmt.Fprintln(a.out, msgEmptyInput)
	}
}

// promptInt re-asks until the answer parses as an integer
func (a *App) promptInt(label string) (int, error) {
	for {
		text, err := a.promptNonEmpty(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(text)
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintln(a.out, msgNotANumber)
	}
}

// promptKey re-asks until the answer parses as a record key
func (a *App) promptKey(label string) (int64, error) {
	for {
		text, err := a.promptNonEmpty(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.ParseInt(text, 10, 64)
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintln(a.out, msgNotANumber)
	}
}

// promptDate re-asks until the answer is a well-formed MM-DD-YYYY date.
// An empty answer returns the fallback when one is given.
func (a *App) promptDate(label string, fallback *time.Time) (time.Time, error) {
	for {
		text, err := a.promptLine(label)
		if err != nil {
			return time.Time{}, err
		}
		if isCancel(text) {
			return time.Time{}, errCancelled
		}
		if text == "" && fallback != nil {
			return *fallback, nil
		}
		date, parseErr := domain.ParseDate(text)
		if parseErr == nil {
			return date, nil
		}
		fmt.Fprintln(a.out, msgInvalidDateFormat)
	}
}

// promptYesNo re-asks until the answer is y or n
func (a *App) promptYesNo(label string) (bool, error) {
	for {
		text, err := a.promptLine(label + " (y/n)")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(text) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(a.out, msgYesOrNo)
	}
}

// promptShift re-asks until the answer names one of the three shifts,
// by number or by name
func (a *App) promptShift() (domain.Shift, error) {
	for {
		text, err := a.promptNonEmpty("Shift (1=Morning, 2=Afternoon, 3=Night)")
		if err != nil {
			return "", err
		}
		switch text {
		case "1":
			return domain.ShiftMorning, nil
		case "2":
			return domain.ShiftAfternoon, nil
		case "3":
			return domain.ShiftNight, nil
		}
		if shift, parseErr := domain.ParseShift(text); parseErr == nil {
			return shift, nil
		}
		fmt.Fprintln(a.out, msgInvalidShift)
	}
}
