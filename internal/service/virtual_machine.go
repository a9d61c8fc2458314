package service

import (
	"context"

	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
	"teamlab/internal/repository"
	"teamlab/pkg/lock"
	"teamlab/pkg/log"
)

type VirtualMachineService interface {
	CreateVM(ctx context.Context, studentId string, req *v1.CreateVMRequest) (*v1.VirtualMachineData, error)
	ResizeVM(ctx context.Context, studentId string, vmId int64, req *v1.ResizeVMRequest) error
	StartVM(ctx context.Context, studentId string, vmId int64) error
	StopVM(ctx context.Context, studentId string, vmId int64) error
	DeleteVM(ctx context.Context, studentId string, vmId int64) error
	AddVMOwners(ctx context.Context, studentId string, vmId int64, req *v1.AddVMOwnersRequest) error
	GetVM(ctx context.Context, vmId int64) (*v1.VirtualMachineData, error)
	ListTeamVMs(ctx context.Context, teamId int64) (*v1.ListVMResponseData, error)
	ListOwnedVMs(ctx context.Context, studentId string) (*v1.ListVMResponseData, error)
}

func NewVirtualMachineService(
	service *Service,
	locks *lock.Keyed,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	vmRepo repository.VirtualMachineRepository,
	logger *log.Logger,
) VirtualMachineService {
	return &virtualMachineService{
		locks:      locks,
		courseRepo: courseRepo,
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		vmRepo:     vmRepo,
		Service:    service,
		logger:     logger,
	}
}

type virtualMachineService struct {
	locks      *lock.Keyed
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	teamRepo   repository.TeamRepository
	vmRepo     repository.VirtualMachineRepository
	*Service
	logger *log.Logger
}

// resourceDelta is the change a mutation wants to apply; resizes carry
// (new - old) per resource so growth and shrink go through the same check.
type resourceDelta struct {
	cpu       int
	ram       int
	disk      int
	instances int
}

// checkQuota recomputes usage from the live VM set and validates the whole
// delta before anything is written. Nothing is partially applied.
func checkQuota(team *model.Team, vms []*model.VirtualMachine, d resourceDelta) error {
	var usedCpu, usedRam, usedDisk int
	for _, vm := range vms {
		usedCpu += vm.Cpu
		usedRam += vm.Ram
		usedDisk += vm.DiskSpace
	}
	if usedCpu+d.cpu > team.CpuMax {
		return v1.ErrQuotaCpuExceeded
	}
	if usedRam+d.ram > team.RamMax {
		return v1.ErrQuotaRamExceeded
	}
	if usedDisk+d.disk > team.DiskSpaceMax {
		return v1.ErrQuotaDiskExceeded
	}
	if len(vms)+d.instances > team.TotVM {
		return v1.ErrQuotaInstancesExceeded
	}
	return nil
}

// teamGuard loads the team and checks the preconditions shared by every VM
// mutation: team active, owning course enabled. Callers hold the team lock.
func (s *virtualMachineService) teamGuard(ctx context.Context, teamId int64) (*model.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamId)
	if err != nil {
		s.logger.WithContext(ctx).Error("teamRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if team == nil {
		return nil, v1.ErrTeamNotFound
	}
	if team.Status != model.TeamStatusActive {
		return nil, v1.ErrTeamNotActive
	}
	course, err := s.courseRepo.GetByID(ctx, team.CourseId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if course == nil || !course.Enabled {
		return nil, v1.ErrCourseDisabled
	}
	return team, nil
}

func (s *virtualMachineService) CreateVM(ctx context.Context, studentId string, req *v1.CreateVMRequest) (*v1.VirtualMachineData, error) {
	unlock := s.locks.Lock(teamLockKey(req.TeamId))
	defer unlock()

	team, err := s.teamGuard(ctx, req.TeamId)
	if err != nil {
		return nil, err
	}

	isMember, err := s.teamRepo.IsMember(ctx, team.Id, studentId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if !isMember {
		return nil, v1.ErrNotTeamMember
	}

	// owners default to the creator and must all be team members at creation
	ownerIds := req.OwnerIds
	if len(ownerIds) == 0 {
		ownerIds = []string{studentId}
	}
	ownerSet := make(map[string]struct{}, len(ownerIds)+1)
	ownerSet[studentId] = struct{}{}
	for _, id := range ownerIds {
		if id == studentId {
			continue
		}
		ok, err := s.teamRepo.IsMember(ctx, team.Id, id)
		if err != nil {
			return nil, v1.ErrInternalServerError
		}
		if !ok {
			return nil, v1.ErrNotTeamMember
		}
		ownerSet[id] = struct{}{}
	}

	if existing, err := s.vmRepo.GetByTeamAndName(ctx, team.Id, req.Name); err != nil {
		return nil, v1.ErrInternalServerError
	} else if existing != nil {
		return nil, v1.ErrDuplicateVMName
	}

	vms, err := s.vmRepo.ListByTeamID(ctx, team.Id)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if err := checkQuota(team, vms, resourceDelta{
		cpu:       req.Cpu,
		ram:       req.Ram,
		disk:      req.DiskSpace,
		instances: 1,
	}); err != nil {
		return nil, err
	}

	vm := &model.VirtualMachine{
		Name:      req.Name,
		TeamId:    team.Id,
		Cpu:       req.Cpu,
		Ram:       req.Ram,
		DiskSpace: req.DiskSpace,
		Creator:   studentId,
	}
	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.vmRepo.Create(ctx, vm); err != nil {
			return err
		}
		owners := make([]*model.VMOwner, 0, len(ownerSet))
		for id := range ownerSet {
			owners = append(owners, &model.VMOwner{
				VmId:      vm.Id,
				TeamId:    team.Id,
				StudentId: id,
			})
		}
		return s.vmRepo.AddOwners(ctx, owners)
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("create vm tx error", zap.Error(err), zap.Int64("team_id", team.Id))
		return nil, v1.ErrInternalServerError
	}

	data := s.vmData(vm)
	for id := range ownerSet {
		data.OwnerIds = append(data.OwnerIds, id)
	}
	return data, nil
}

// ownerGuard loads the VM, runs the shared team preconditions and checks the
// actor owns the VM. Returns vm and team. Callers hold the team lock.
func (s *virtualMachineService) ownerGuard(ctx context.Context, studentId string, vmId int64) (*model.VirtualMachine, *model.Team, error) {
	vm, err := s.vmRepo.GetByID(ctx, vmId)
	if err != nil {
		return nil, nil, v1.ErrInternalServerError
	}
	if vm == nil {
		return nil, nil, v1.ErrVMNotFound
	}
	team, err := s.teamGuard(ctx, vm.TeamId)
	if err != nil {
		return nil, nil, err
	}
	isOwner, err := s.vmRepo.IsOwner(ctx, vm.Id, studentId)
	if err != nil {
		return nil, nil, v1.ErrInternalServerError
	}
	if !isOwner {
		return nil, nil, v1.ErrNotVMOwner
	}
	return vm, team, nil
}

// lockVMTeam resolves the VM's team id first so the lock can be taken before
// any guarded read.
func (s *virtualMachineService) lockVMTeam(ctx context.Context, vmId int64) (func(), error) {
	vm, err := s.vmRepo.GetByID(ctx, vmId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if vm == nil {
		return nil, v1.ErrVMNotFound
	}
	return s.locks.Lock(teamLockKey(vm.TeamId)), nil
}

func (s *virtualMachineService) ResizeVM(ctx context.Context, studentId string, vmId int64, req *v1.ResizeVMRequest) error {
	unlock, err := s.lockVMTeam(ctx, vmId)
	if err != nil {
		return err
	}
	defer unlock()

	vm, team, err := s.ownerGuard(ctx, studentId, vmId)
	if err != nil {
		return err
	}

	vms, err := s.vmRepo.ListByTeamID(ctx, team.Id)
	if err != nil {
		return v1.ErrInternalServerError
	}
	if err := checkQuota(team, vms, resourceDelta{
		cpu:  req.Cpu - vm.Cpu,
		ram:  req.Ram - vm.Ram,
		disk: req.DiskSpace - vm.DiskSpace,
	}); err != nil {
		return err
	}

	vm.Cpu = req.Cpu
	vm.Ram = req.Ram
	vm.DiskSpace = req.DiskSpace
	if err := s.vmRepo.Update(ctx, vm); err != nil {
		s.logger.WithContext(ctx).Error("vmRepo.Update error", zap.Error(err), zap.Int64("vm_id", vmId))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *virtualMachineService) StartVM(ctx context.Context, studentId string, vmId int64) error {
	unlock, err := s.lockVMTeam(ctx, vmId)
	if err != nil {
		return err
	}
	defer unlock()

	vm, team, err := s.ownerGuard(ctx, studentId, vmId)
	if err != nil {
		return err
	}
	if vm.Active {
		return nil
	}

	vms, err := s.vmRepo.ListByTeamID(ctx, team.Id)
	if err != nil {
		return v1.ErrInternalServerError
	}
	active := 0
	for _, other := range vms {
		if other.Active {
			active++
		}
	}
	if active+1 > team.ActiveVM {
		return v1.ErrQuotaActiveExceeded
	}

	vm.Active = true
	if err := s.vmRepo.Update(ctx, vm); err != nil {
		s.logger.WithContext(ctx).Error("vmRepo.Update error", zap.Error(err), zap.Int64("vm_id", vmId))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *virtualMachineService) StopVM(ctx context.Context, studentId string, vmId int64) error {
	unlock, err := s.lockVMTeam(ctx, vmId)
	if err != nil {
		return err
	}
	defer unlock()

	vm, _, err := s.ownerGuard(ctx, studentId, vmId)
	if err != nil {
		return err
	}
	if !vm.Active {
		return nil
	}
	vm.Active = false
	if err := s.vmRepo.Update(ctx, vm); err != nil {
		s.logger.WithContext(ctx).Error("vmRepo.Update error", zap.Error(err), zap.Int64("vm_id", vmId))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *virtualMachineService) DeleteVM(ctx context.Context, studentId string, vmId int64) error {
	unlock, err := s.lockVMTeam(ctx, vmId)
	if err != nil {
		return err
	}
	defer unlock()

	vm, _, err := s.ownerGuard(ctx, studentId, vmId)
	if err != nil {
		return err
	}
	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.vmRepo.DeleteOwnersByVM(ctx, vm.Id); err != nil {
			return err
		}
		return s.vmRepo.Delete(ctx, vm.Id)
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("delete vm tx error", zap.Error(err), zap.Int64("vm_id", vmId))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *virtualMachineService) AddVMOwners(ctx context.Context, studentId string, vmId int64, req *v1.AddVMOwnersRequest) error {
	unlock, err := s.lockVMTeam(ctx, vmId)
	if err != nil {
		return err
	}
	defer unlock()

	vm, team, err := s.ownerGuard(ctx, studentId, vmId)
	if err != nil {
		return err
	}

	owners := make([]*model.VMOwner, 0, len(req.OwnerIds))
	for _, id := range req.OwnerIds {
		student, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			return v1.ErrInternalServerError
		}
		if student == nil || student.Role != model.RoleStudent {
			return v1.ErrStudentNotFound
		}
		already, err := s.vmRepo.IsOwner(ctx, vm.Id, id)
		if err != nil {
			return v1.ErrInternalServerError
		}
		if already {
			continue
		}
		owners = append(owners, &model.VMOwner{
			VmId:      vm.Id,
			TeamId:    team.Id,
			StudentId: id,
		})
	}
	if len(owners) == 0 {
		return nil
	}
	if err := s.vmRepo.AddOwners(ctx, owners); err != nil {
		s.logger.WithContext(ctx).Error("vmRepo.AddOwners error", zap.Error(err), zap.Int64("vm_id", vmId))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *virtualMachineService) GetVM(ctx context.Context, vmId int64) (*v1.VirtualMachineData, error) {
	vm, err := s.vmRepo.GetByID(ctx, vmId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if vm == nil {
		return nil, v1.ErrVMNotFound
	}
	data := s.vmData(vm)
	owners, err := s.vmRepo.ListOwners(ctx, vmId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	for _, o := range owners {
		data.OwnerIds = append(data.OwnerIds, o.StudentId)
	}
	return data, nil
}

func (s *virtualMachineService) ListTeamVMs(ctx context.Context, teamId int64) (*v1.ListVMResponseData, error) {
	team, err := s.teamRepo.GetByID(ctx, teamId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if team == nil {
		return nil, v1.ErrTeamNotFound
	}
	vms, err := s.vmRepo.ListByTeamID(ctx, teamId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	return s.vmList(vms), nil
}

func (s *virtualMachineService) ListOwnedVMs(ctx context.Context, studentId string) (*v1.ListVMResponseData, error) {
	vms, err := s.vmRepo.ListByOwner(ctx, studentId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	return s.vmList(vms), nil
}

func (s *virtualMachineService) vmList(vms []*model.VirtualMachine) *v1.ListVMResponseData {
	out := &v1.ListVMResponseData{Items: make([]v1.VirtualMachineData, 0, len(vms)), Total: len(vms)}
	for _, vm := range vms {
		out.Items = append(out.Items, *s.vmData(vm))
	}
	return out
}

func (s *virtualMachineService) vmData(vm *model.VirtualMachine) *v1.VirtualMachineData {
	return &v1.VirtualMachineData{
		Id:        vm.Id,
		Name:      vm.Name,
		TeamId:    vm.TeamId,
		Cpu:       vm.Cpu,
		Ram:       vm.Ram,
		DiskSpace: vm.DiskSpace,
		Active:    vm.Active,
		Creator:   vm.Creator,
	}
}
