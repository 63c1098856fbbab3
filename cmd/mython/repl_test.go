package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dvshapkin/mython/mython"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateResetCommandClearsClosure(t *testing.T) {
	m := newREPLModel()
	m.closure["x"] = mython.NewNumber(1)
	m.textInput.SetValue(":reset")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for :reset")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if _, ok := rm.closure["x"]; ok {
		t.Fatalf("expected :reset to clear the closure")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after :reset")
	}
	if len(rm.history) != 1 || rm.history[0].output != "environment reset" {
		t.Fatalf("expected a history entry noting the reset, got %#v", rm.history)
	}
}

func TestUpdateBlankInputIsIgnored(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("   ")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if cmd != nil {
		t.Fatalf("expected no command for blank input")
	}
	if len(rm.history) != 0 {
		t.Fatalf("expected no history entry for blank input, got %#v", rm.history)
	}
}

func TestUpdateEnterEvaluatesAndRecordsHistory(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("x = 4")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if cmd != nil {
		t.Fatalf("expected no command for a plain statement")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after Enter")
	}
	if len(rm.history) != 1 || rm.history[0].isErr {
		t.Fatalf("expected a successful history entry, got %#v", rm.history)
	}
	if len(rm.cmdHistory) != 1 || rm.cmdHistory[0] != "x = 4" {
		t.Fatalf("expected cmdHistory to record the input, got %v", rm.cmdHistory)
	}
	if val, ok := rm.closure["x"]; !ok || val.Number() != 4 {
		t.Fatalf("expected x = 4 to be bound in the closure, got %#v", rm.closure)
	}
}

func TestEvaluateAssignmentStoresVariable(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("score = 42")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}

	score, ok := m.closure["score"]
	if !ok {
		t.Fatalf("expected score to be stored in the REPL closure")
	}
	if score.Kind() != mython.KindNumber || score.Number() != 42 {
		t.Fatalf("unexpected score value: %#v", score)
	}
}

func TestEvaluateEqualityDoesNotOverwriteVariable(t *testing.T) {
	m := newREPLModel()
	m.closure["a"] = mython.NewNumber(5)

	output, isErr := m.evaluate("a == 5")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "True" {
		t.Fatalf("expected \"True\", got %q", output)
	}

	a := m.closure["a"]
	if a.Kind() != mython.KindNumber || a.Number() != 5 {
		t.Fatalf("variable a was clobbered by the equality expression: %#v", a)
	}
}

func TestEvaluatePrintReturnsPrintedOutputNotResultValue(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("print 'hi'")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "hi" {
		t.Fatalf("expected the printed text \"hi\", got %q", output)
	}
}

func TestEvaluateSyntaxErrorIsReported(t *testing.T) {
	m := newREPLModel()

	_, isErr := m.evaluate("1 = 2")
	if !isErr {
		t.Fatalf("expected an error for an invalid assignment target")
	}
}

func TestEvaluateRuntimeErrorIsReported(t *testing.T) {
	m := newREPLModel()

	_, isErr := m.evaluate("print undefined")
	if !isErr {
		t.Fatalf("expected an error for an unknown variable")
	}
}
