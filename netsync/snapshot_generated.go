package netsync

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Table accessors for snapshot.fbs, laid out the way flatc emits them.

type Snapshot struct {
	_tab flatbuffers.Table
}

func GetRootAsSnapshot(buf []byte, offset flatbuffers.UOffsetT) *Snapshot {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Snapshot{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Snapshot) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Snapshot) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Snapshot) Version() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) Width() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) Height() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) Cells(j int) byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *Snapshot) CellsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Snapshot) CellsBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Snapshot) ActiveKind() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) ActiveRotation() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) ActiveX() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) ActiveY() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) Phase() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(20))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) Held() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(22))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) CanHold() bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(24))
	if o != 0 {
		return rcv._tab.GetBool(o + rcv._tab.Pos)
	}
	return false
}

func (rcv *Snapshot) Queue(j int) byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *Snapshot) QueueLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Snapshot) QueueBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Snapshot) PiecesPlaced() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(28))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) AttacksSent() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(30))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) LinesCleared() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(32))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) FinesseErrors() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(34))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) Combo() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(36))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return -1
}

func (rcv *Snapshot) B2b() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(38))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) Garbage(j int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(40))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetInt32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *Snapshot) GarbageLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(40))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Snapshot) BagState(j int) byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(42))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *Snapshot) BagStateLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(42))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Snapshot) BagStateBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(42))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Snapshot) WalkerSource(j int) byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(44))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *Snapshot) WalkerSourceLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(44))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Snapshot) WalkerSourceBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(44))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Snapshot) WalkerHole() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(46))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Snapshot) WalkerVelocity() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(48))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func SnapshotStart(builder *flatbuffers.Builder) {
	builder.StartObject(23)
}

func SnapshotAddVersion(builder *flatbuffers.Builder, version byte) {
	builder.PrependByteSlot(0, version, 0)
}

func SnapshotAddWidth(builder *flatbuffers.Builder, width int32) {
	builder.PrependInt32Slot(1, width, 0)
}

func SnapshotAddHeight(builder *flatbuffers.Builder, height int32) {
	builder.PrependInt32Slot(2, height, 0)
}

func SnapshotAddCells(builder *flatbuffers.Builder, cells flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(3, flatbuffers.UOffsetT(cells), 0)
}

func SnapshotAddActiveKind(builder *flatbuffers.Builder, activeKind byte) {
	builder.PrependByteSlot(4, activeKind, 0)
}

func SnapshotAddActiveRotation(builder *flatbuffers.Builder, activeRotation int32) {
	builder.PrependInt32Slot(5, activeRotation, 0)
}

func SnapshotAddActiveX(builder *flatbuffers.Builder, activeX int32) {
	builder.PrependInt32Slot(6, activeX, 0)
}

func SnapshotAddActiveY(builder *flatbuffers.Builder, activeY int32) {
	builder.PrependInt32Slot(7, activeY, 0)
}

func SnapshotAddPhase(builder *flatbuffers.Builder, phase byte) {
	builder.PrependByteSlot(8, phase, 0)
}

func SnapshotAddHeld(builder *flatbuffers.Builder, held byte) {
	builder.PrependByteSlot(9, held, 0)
}

func SnapshotAddCanHold(builder *flatbuffers.Builder, canHold bool) {
	builder.PrependBoolSlot(10, canHold, false)
}

func SnapshotAddQueue(builder *flatbuffers.Builder, queue flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(11, flatbuffers.UOffsetT(queue), 0)
}

func SnapshotAddPiecesPlaced(builder *flatbuffers.Builder, piecesPlaced int32) {
	builder.PrependInt32Slot(12, piecesPlaced, 0)
}

func SnapshotAddAttacksSent(builder *flatbuffers.Builder, attacksSent int32) {
	builder.PrependInt32Slot(13, attacksSent, 0)
}

func SnapshotAddLinesCleared(builder *flatbuffers.Builder, linesCleared int32) {
	builder.PrependInt32Slot(14, linesCleared, 0)
}

func SnapshotAddFinesseErrors(builder *flatbuffers.Builder, finesseErrors int32) {
	builder.PrependInt32Slot(15, finesseErrors, 0)
}

func SnapshotAddCombo(builder *flatbuffers.Builder, combo int32) {
	builder.PrependInt32Slot(16, combo, -1)
}

func SnapshotAddB2b(builder *flatbuffers.Builder, b2b int32) {
	builder.PrependInt32Slot(17, b2b, 0)
}

func SnapshotAddGarbage(builder *flatbuffers.Builder, garbage flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(18, flatbuffers.UOffsetT(garbage), 0)
}

func SnapshotStartGarbageVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func SnapshotAddBagState(builder *flatbuffers.Builder, bagState flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(19, flatbuffers.UOffsetT(bagState), 0)
}

func SnapshotAddWalkerSource(builder *flatbuffers.Builder, walkerSource flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(20, flatbuffers.UOffsetT(walkerSource), 0)
}

func SnapshotAddWalkerHole(builder *flatbuffers.Builder, walkerHole int32) {
	builder.PrependInt32Slot(21, walkerHole, 0)
}

func SnapshotAddWalkerVelocity(builder *flatbuffers.Builder, walkerVelocity int32) {
	builder.PrependInt32Slot(22, walkerVelocity, 0)
}

func SnapshotEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
