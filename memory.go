package abacus

// MemorySave stores the displayed value in a new memory slot.
func (s *Session) MemorySave() {
	s.begin()
	value, ok := s.memoryOperand()
	if !ok {
		return
	}
	s.memory = pushFront(s.memory, value, s.memoryLimit)
	s.endOperand()
}

// MemoryAdd adds the displayed value to the newest memory slot, or stores it
// when memory is empty.
func (s *Session) MemoryAdd() {
	s.begin()
	value, ok := s.memoryOperand()
	if !ok {
		return
	}
	if len(s.memory) == 0 {
		s.memory = pushFront(s.memory, value, s.memoryLimit)
		s.endOperand()
		return
	}
	s.combineMemory(value, 1)
}

// MemorySubtract subtracts the displayed value from the newest memory slot.
// It does nothing when memory is empty.
func (s *Session) MemorySubtract() {
	s.begin()
	if len(s.memory) == 0 {
		return
	}
	value, ok := s.memoryOperand()
	if !ok {
		return
	}
	s.combineMemory(value, -1)
}

// MemoryRecall loads the newest memory slot into the operand buffer.
func (s *Session) MemoryRecall() {
	s.begin()
	if len(s.memory) == 0 {
		return
	}
	s.leaveUnaryResult()
	s.leaveFinished()
	s.input = s.memory[0]
	s.percentShown = false
	s.phase = phaseTyping
}

// MemoryClear empties memory.
func (s *Session) MemoryClear() {
	s.begin()
	s.memory = nil
}

// ClearHistory empties history.
func (s *Session) ClearHistory() {
	s.begin()
	s.history = nil
	s.chainLogged = false
}

// memoryOperand reads the displayed value, percent marker included, in
// canonical form.
func (s *Session) memoryOperand() (string, bool) {
	v, err := ParseDisplay(s.operand())
	if err != nil {
		s.fail(err)
		return "", false
	}
	text, err := FormatNumber(v)
	if err != nil {
		s.fail(err)
		return "", false
	}
	return text, true
}

// combineMemory adds sign*value to memory slot 0.
func (s *Session) combineMemory(value string, sign float64) {
	slot, err := ParseDisplay(s.memory[0])
	if err != nil {
		s.fail(err)
		return
	}
	v, err := ParseDisplay(value)
	if err != nil {
		s.fail(err)
		return
	}
	text, err := FormatNumber(slot + sign*v)
	if err != nil {
		s.fail(err)
		return
	}
	s.memory[0] = text
	s.endOperand()
}

// endOperand makes the next digit start a new operand once typed input has
// been committed to memory.
func (s *Session) endOperand() {
	if s.phase == phaseTyping {
		s.phase = phaseFresh
	}
}
